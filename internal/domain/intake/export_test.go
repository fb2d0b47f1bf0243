package intake

import "time"

func SetNowForTest(p *Processor, now time.Time) {
	p.now = func() time.Time { return now }
}
