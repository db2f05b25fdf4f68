package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/bind"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/store"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// replayResult summarises a replayed session.
type replayResult struct {
	Events   int  // key transitions delivered
	Fires    int  // commands fired by the current config
	Recorded int  // fires recorded in the session log
	Quit     bool // a quit command stopped the replay
	Policy   command.FirePolicy
}

// printHost writes echo output and records quit requests.
type printHost struct {
	w    io.Writer
	quit bool
}

func (h *printHost) Echo(message string) { fmt.Fprintf(h.w, "  » %s\n", message) }

func (h *printHost) Quit() { h.quit = true }

// replay feeds the key transitions of a session log through a dispatcher
// built from cfg and prints every command that fires. Recorded fires are
// counted but not re-delivered.
func replay(w io.Writer, cfg *config.Config, recs []store.Record, log *zerolog.Logger) (replayResult, error) {
	root := surface.NewElement("root")
	elems := map[string]*surface.Element{
		config.ElementLog:  surface.NewElement(config.ElementLog),
		config.ElementSets: surface.NewElement(config.ElementSets),
	}
	host := &printHost{w: w}

	d, _, err := bind.New(cfg, root, bind.Elements{
		config.ElementLog:  elems[config.ElementLog],
		config.ElementSets: elems[config.ElementSets],
	}, host, log)
	if err != nil {
		return replayResult{}, err
	}
	// Replay listens even when the config starts disabled.
	d.Enable()

	res := replayResult{Policy: d.Policy()}
	d.OnFire(func(f command.Fire) {
		res.Fires++
		fmt.Fprintf(w, "%s  ▶ %s:%s\n", f.Time.Format("15:04:05.000"), f.Set, keys.Format(f.Chord))
	})

	for _, rec := range recs {
		if rec.Kind == store.KindFire {
			res.Recorded++
			continue
		}
		ev, ok := rec.Event()
		if !ok {
			continue
		}
		el, ok := elems[rec.Target]
		if !ok {
			el = root
		}
		el.Emit(ev)
		res.Events++
		if host.quit {
			res.Quit = true
			break
		}
	}
	return res, nil
}
