package sensors

// FakeClock is a settable Clock for tests and the simulator.
type FakeClock struct {
	Now    TimeTuple
	Uptime int64
}

func (c *FakeClock) Localtime() TimeTuple { return c.Now }
func (c *FakeClock) UptimeMS() int64      { return c.Uptime }

// Advance moves the fake uptime forward and bumps the seconds field,
// rolling minutes and hours the way a real tick would.
func (c *FakeClock) Advance(ms int64) {
	c.Uptime += ms
	total := c.Now.Hour*3600 + c.Now.Minute*60 + c.Now.Second + int(ms/1000)
	total %= 24 * 3600
	c.Now.Hour = total / 3600
	c.Now.Minute = (total / 60) % 60
	c.Now.Second = total % 60
}

// FakeBattery is a settable Battery.
type FakeBattery struct {
	Lvl    int
	Charge bool
}

func (b *FakeBattery) Level() int     { return b.Lvl }
func (b *FakeBattery) Charging() bool { return b.Charge }

// FakeConnectivity is a settable Connectivity.
type FakeConnectivity struct {
	Link    bool
	Pending bool
}

func (c *FakeConnectivity) Connected() bool            { return c.Link }
func (c *FakeConnectivity) NotificationsPending() bool { return c.Pending }
