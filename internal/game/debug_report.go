package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// reportLogTail is how many recent cue events the report includes.
const reportLogTail = 30

// debugReport renders the current engine state as plain text: tuning,
// per-object cue state, and the recent event tail. Meant to be pasted
// into a bug report.
func (g *Game) debugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- CovertCue debug report ---\n")
	fmt.Fprintf(&b, "t=%.2fs enabled=%v threshold=%.1f° window=%d period=%.2fs radius=%.1f\n",
		time.Since(g.start).Seconds(), g.cueEnabled,
		g.cfg.ThresholdDeg, g.cfg.WindowCapacity, g.cfg.PulsePeriod, g.cfg.BaseRadius)

	gz := g.viewer.Gaze()
	fmt.Fprintf(&b, "gaze origin=(%.2f, %.2f, %.2f) forward=(%.3f, %.3f, %.3f)\n\n",
		gz.Origin.X, gz.Origin.Y, gz.Origin.Z, gz.Forward.X, gz.Forward.Y, gz.Forward.Z)

	for _, obj := range g.objects {
		p := obj.Params()
		avg, ok := obj.Controller.SmoothedAngle()
		avgStr := "--"
		if ok {
			avgStr = fmt.Sprintf("%.1f°", avg)
		}
		fmt.Fprintf(&b, "%-6s pos=(%.1f, %.1f, %.1f) state=%-10s avg=%-7s radius=%.2f mod=%.3f\n",
			obj.Label, obj.Pos.X, obj.Pos.Y, obj.Pos.Z,
			obj.Controller.State(), avgStr, p.Radius, p.Modulation)
	}

	entries := g.cueLog.Entries()
	start := 0
	if len(entries) > reportLogTail {
		start = len(entries) - reportLogTail
	}
	fmt.Fprintf(&b, "\nrecent events (%d):\n", len(entries)-start)
	for _, e := range entries[start:] {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// copyDebugReport puts the report on the system clipboard. Clipboard
// failure is not worth interrupting the frame for; it is only logged.
func (g *Game) copyDebugReport() {
	if err := clipboard.WriteAll(g.debugReport()); err != nil {
		log.Printf("clipboard write failed: %v", err)
	}
}
