package goalchain

import (
	"encoding/json"
	"time"

	"github.com/iov-one/goalchain/errors"
)

// UnixTime is a point in time in whole seconds since the UNIX epoch. Task
// deadlines use it, so they compare directly with the block time.
type UnixTime int64

// AsUnixTime drops the sub second part of t.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// BlockUnixTime returns the time of the block being processed in whole
// seconds.
func BlockUnixTime(ctx Context) (UnixTime, error) {
	now, err := BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return AsUnixTime(now), nil
}

// Time returns the same moment as a time.Time in UTC.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// Passed reports whether a deadline at t is over at now. The deadline
// second itself still belongs to the allowed window.
func (t UnixTime) Passed(now UnixTime) bool {
	return now > t
}

// UnmarshalJSON accepts a number of seconds or an RFC 3339 string. Numbers
// are the wire format, strings are easier to write in a genesis file.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		*t = UnixTime(unix)
		return nil
	}
	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid time %s", raw)
	}
	*t = AsUnixTime(stdtime)
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}
