package petstatus

import "time"

// SetNowForTest fija el reloj desde los tests externos (petstatus_test).
func SetNowForTest(s *Service, now time.Time) {
	s.now = func() time.Time { return now }
}
