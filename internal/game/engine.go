package game

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunReport summarizes a finished run for progression bookkeeping.
type RunReport struct {
	Level     int
	LevelName string
	Completed bool
	Final     CarState
	Elapsed   float64
	Summary   RunSummary
}

// EngineConfig wires the engine to its collaborators. Multipliers is
// consulted at each level start so freshly purchased upgrades apply to the
// next run; Events and OnRunEnd feed the progression layer.
type EngineConfig struct {
	TickHz      float64
	Level       int
	Multipliers func() UpgradeMultipliers
	Events      func(Event)
	OnRunEnd    func(RunReport)
	Logger      *zap.Logger
}

type stateReq struct {
	reply chan CarState
}

type hudReq struct {
	reply chan HUDSnapshot
}

type ctrlKind int

const (
	ctrlStartLevel ctrlKind = iota
	ctrlRestart
	ctrlPause
	ctrlResume
)

type ctrlMsg struct {
	kind  ctrlKind
	level int
	reply chan error
}

// Engine owns the session on a single goroutine and advances it at a fixed
// tick. All access goes through channels; callers never touch session state
// directly.
type Engine struct {
	cfg EngineConfig

	inputCh     chan Input
	stateReqCh  chan stateReq
	hudReqCh    chan hudReq
	ctrlCh      chan ctrlMsg
	subscribeCh chan chan HUDSnapshot
	unsubCh     chan chan HUDSnapshot

	log *zap.Logger
}

func NewEngine(cfg EngineConfig) *Engine {
	if cfg.TickHz <= 0 {
		cfg.TickHz = 1 / StepDT
	}
	if cfg.Level <= 0 {
		cfg.Level = 1
	}
	if cfg.Multipliers == nil {
		cfg.Multipliers = DefaultMultipliers
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		cfg:         cfg,
		inputCh:     make(chan Input, 16),
		stateReqCh:  make(chan stateReq, 16),
		hudReqCh:    make(chan hudReq, 16),
		ctrlCh:      make(chan ctrlMsg, 16),
		subscribeCh: make(chan chan HUDSnapshot, 8),
		unsubCh:     make(chan chan HUDSnapshot, 8),
		log:         cfg.Logger,
	}
}

// SetInput replaces the driver intent sampled on the next tick. Stale
// intents are dropped when the loop is behind.
func (e *Engine) SetInput(in Input) {
	select {
	case e.inputCh <- in:
	default:
	}
}

func (e *Engine) State(ctx context.Context) (CarState, error) {
	req := stateReq{reply: make(chan CarState, 1)}
	select {
	case e.stateReqCh <- req:
	case <-ctx.Done():
		return CarState{}, ctx.Err()
	}
	select {
	case st := <-req.reply:
		return st, nil
	case <-ctx.Done():
		return CarState{}, ctx.Err()
	}
}

func (e *Engine) HUD(ctx context.Context) (HUDSnapshot, error) {
	req := hudReq{reply: make(chan HUDSnapshot, 1)}
	select {
	case e.hudReqCh <- req:
	case <-ctx.Done():
		return HUDSnapshot{}, ctx.Err()
	}
	select {
	case hud := <-req.reply:
		return hud, nil
	case <-ctx.Done():
		return HUDSnapshot{}, ctx.Err()
	}
}

// StartLevel discards the current session and begins the given level.
func (e *Engine) StartLevel(ctx context.Context, level int) error {
	return e.control(ctx, ctrlMsg{kind: ctrlStartLevel, level: level})
}

// Restart rebuilds the current level from scratch: new session, reseeded
// terrain, fresh car.
func (e *Engine) Restart(ctx context.Context) error {
	return e.control(ctx, ctrlMsg{kind: ctrlRestart})
}

func (e *Engine) Pause(ctx context.Context) error {
	return e.control(ctx, ctrlMsg{kind: ctrlPause})
}

func (e *Engine) Resume(ctx context.Context) error {
	return e.control(ctx, ctrlMsg{kind: ctrlResume})
}

func (e *Engine) control(ctx context.Context, msg ctrlMsg) error {
	msg.reply = make(chan error, 1)
	select {
	case e.ctrlCh <- msg:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-msg.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe streams one HUD snapshot per tick. Slow subscribers drop frames.
func (e *Engine) Subscribe(ctx context.Context) (<-chan HUDSnapshot, func()) {
	ch := make(chan HUDSnapshot, 32)
	select {
	case e.subscribeCh <- ch:
	case <-ctx.Done():
		close(ch)
		return ch, func() {}
	}
	unsub := func() {
		select {
		case e.unsubCh <- ch:
		default:
		}
	}
	return ch, unsub
}

// Run owns the session until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	session, err := e.newSession(e.cfg.Level)
	if err != nil {
		return err
	}
	reported := false

	var input Input
	subs := map[chan HUDSnapshot]struct{}{}

	// Each tick feeds the session its wall-clock frame time; the session's
	// accumulator turns that into fixed steps, so changing TickHz changes
	// snapshot granularity, not simulation speed.
	frameDT := 1 / e.cfg.TickHz
	tick := time.NewTicker(time.Duration(float64(time.Second) / e.cfg.TickHz))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			for ch := range subs {
				close(ch)
			}
			return nil

		case in := <-e.inputCh:
			input = in

		case req := <-e.stateReqCh:
			req.reply <- session.Car.State()

		case req := <-e.hudReqCh:
			req.reply <- session.HUD()

		case ch := <-e.subscribeCh:
			subs[ch] = struct{}{}
			ch <- session.HUD()

		case ch := <-e.unsubCh:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}

		case msg := <-e.ctrlCh:
			switch msg.kind {
			case ctrlStartLevel:
				next, err := e.newSession(msg.level)
				if err != nil {
					msg.reply <- err
					continue
				}
				session = next
				reported = false
				input = Input{}
				msg.reply <- nil
			case ctrlRestart:
				next, err := e.newSession(session.Level)
				if err != nil {
					msg.reply <- err
					continue
				}
				session = next
				reported = false
				input = Input{}
				msg.reply <- nil
			case ctrlPause:
				session.Pause()
				msg.reply <- nil
			case ctrlResume:
				session.Resume()
				msg.reply <- nil
			}

		case <-tick.C:
			session.Step(input, frameDT)

			if !reported && (session.State == StateGameOver || session.State == StateLevelComplete) {
				reported = true
				report := RunReport{
					Level:     session.Level,
					LevelName: session.Spec.Name,
					Completed: session.State == StateLevelComplete,
					Final:     session.Car.State(),
					Elapsed:   session.Elapsed,
					Summary:   session.Stats.Summary(),
				}
				e.log.Info("run finished",
					zap.Int("level", report.Level),
					zap.Bool("completed", report.Completed),
					zap.Float64("distance", report.Final.Distance),
					zap.Int("coins", report.Final.Coins))
				if e.cfg.OnRunEnd != nil {
					e.cfg.OnRunEnd(report)
				}
			}

			hud := session.HUD()
			for ch := range subs {
				select {
				case ch <- hud:
				default:
					// slow subscriber, drop frame
				}
			}
		}
	}
}

func (e *Engine) newSession(level int) (*Session, error) {
	session, err := NewSession(level, e.cfg.Multipliers())
	if err != nil {
		return nil, err
	}
	if e.cfg.Events != nil {
		session.Bus.SubscribeAll(e.cfg.Events)
	}
	e.log.Info("level started",
		zap.Int("level", level),
		zap.String("name", session.Spec.Name),
		zap.String("tier", session.Params.Tier.String()),
		zap.Uint64("seed", session.Params.Seed))
	return session, nil
}
