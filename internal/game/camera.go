package game

// Camera follows the car with smoothing. UI clients read it from the frame
// snapshot; the core never depends on it.
type Camera struct {
	X, Y float64

	// Screen shake.
	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64

	LeadDistance float64 // how far ahead of the car the camera aims
	FollowRate   float64 // per second
}

func NewCamera() Camera {
	return Camera{LeadDistance: 20, FollowRate: 6}
}

// Follow eases the camera toward a point ahead of the car.
func (c *Camera) Follow(car CarState, dt float64) {
	t := clampF(c.FollowRate*dt, 0, 1)
	c.X += (car.X + c.LeadDistance - c.X) * t
	c.Y += (car.Y - c.Y) * t
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes deterministic offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}
