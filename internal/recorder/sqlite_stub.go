//go:build !sqlite

package recorder

import "fmt"

func newSQLiteSink(_ string) (Sink, error) {
	return nil, fmt.Errorf("recorder: sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
