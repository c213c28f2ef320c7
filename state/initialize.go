package state

import "time"

// newLocalEnv creates environment before configuration is loaded, logger is
// set only when configuration is known.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}
