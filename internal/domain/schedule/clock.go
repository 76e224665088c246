package schedule

import "time"

// Clock supplies the current instant. It is injected wherever a
// reference instant is needed, so nothing in the scheduling core reads
// the wall clock ambiently and every computation is replayable.
type Clock func() time.Time
