package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/exiled/internal/application/level"
)

// session runs the tick loop of one terminal game
type session struct {
	levels   *level.Manager
	view     *view
	input    *termInput
	log      *slog.Logger
	gameOver bool
}

func newSession(m *level.Manager, screen tcell.Screen, log *slog.Logger) *session {
	v := &view{screen: screen}
	s := &session{
		levels: m,
		view:   v,
		input:  &termInput{view: v},
		log:    log,
	}
	s.refit()
	return s
}

// refit scales the current level onto the terminal
func (s *session) refit() {
	cols, rows := s.view.screen.Size()
	s.view.fit(s.levels.Current().Region, cols, rows)
}

// handle applies one terminal event. Returns false when the player quits.
func (s *session) handle(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		s.view.screen.Sync()
		s.refit()
		return true
	}
	s.input.handle(ev)
	return !s.input.quit
}

// step runs one tick and redraws
func (s *session) step() {
	if s.gameOver {
		if s.input.takeRestart() {
			if err := s.levels.Restart(); err != nil {
				s.log.Error("failed to restart", "err", err)
			} else {
				s.gameOver = false
				s.refit()
			}
		}
		s.input.next()
		s.view.draw(s.levels, s.gameOver)
		return
	}
	s.input.takeRestart()

	before := s.levels.Current()
	s.levels.Tick(s.input.next())
	if s.levels.Current() != before {
		s.refit()
	}
	if s.levels.Player().Despawned() {
		s.gameOver = true
		s.log.Info("game over", "level", s.levels.Current().Config.ID, "ticks", s.levels.World().Ticks())
	}
	s.view.draw(s.levels, s.gameOver)
}

// run ticks at the given interval until the player quits
func (s *session) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.view.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	s.view.draw(s.levels, s.gameOver)
	for {
		select {
		case ev := <-events:
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.step()
		}
	}
}
