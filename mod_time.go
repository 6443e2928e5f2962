package gekko

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// FrameStats counts frames for the once-per-second debug report.
type FrameStats struct {
	windowStart time.Time
	frames      int
	LastFPS     float64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) error {
	now := time.Now()
	cmd.AddResources(&Time{
		Time: now,
		Dt:   0,
	}, &FrameStats{windowStart: now})
	app.UseSystem(System(timeSystem).InStage(Prelude))
	app.UseSystem(System(frameStatsSystem).InStage(PostRender))
	return nil
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}

func frameStatsSystem(t *Time, stats *FrameStats, cmd *Commands) {
	stats.frames++
	elapsed := t.Time.Sub(stats.windowStart)
	if elapsed < time.Second {
		return
	}
	stats.LastFPS = float64(stats.frames) / elapsed.Seconds()
	stats.frames = 0
	stats.windowStart = t.Time
	cmd.app.Logger().Debugf("%.1f fps (%v last frame)", stats.LastFPS, t.Dt)
}
