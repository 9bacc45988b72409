package enum

import "database/sql/driver"

// Status represents the active/inactive state of a user or point of sale
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is one of the known states
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *Status) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = Status(v)
	case []byte:
		*s = Status(v)
	}
	return nil
}
