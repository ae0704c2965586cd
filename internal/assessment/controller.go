package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

const publishTimeout = 5 * time.Second

// Options configures a Controller.
type Options struct {
	// Children is the ordered question sequence.
	Children []ChildRef

	// InitialStep is the number of steps the learner has already completed,
	// as reported by the grader.
	InitialStep int

	// Attempts holds the counters known at start.
	Attempts AttemptState

	Transport transport.Transport

	// Notifier receives navigation lock changes. Optional.
	Notifier telemetry.Notifier

	// Publisher receives telemetry events. Optional.
	Publisher telemetry.Publisher

	Logger *zap.Logger

	// RequestTimeout bounds each grading request. Zero means no timeout.
	RequestTimeout time.Duration
}

// Controller drives one learner's pass through an assessment. All methods
// must be called from the event loop; asynchronous work is returned as a
// tea.Cmd whose message is later fed back through Update.
type Controller struct {
	session     *Session
	attempts    AttemptState
	grade       GradeState
	pipeline    *Pipeline
	notifier    telemetry.Notifier
	publisher   telemetry.Publisher
	log         *zap.Logger
	initialStep int
	err         error
}

// NewController creates a controller. Call Start to display the first step.
func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		session:     newSession(opts.Children),
		attempts:    opts.Attempts,
		pipeline:    NewPipeline(opts.Transport, opts.RequestTimeout, log),
		notifier:    opts.Notifier,
		publisher:   opts.Publisher,
		log:         log,
		initialStep: opts.InitialStep,
	}
}

// Session returns the session state. It must not be mutated by callers.
func (c *Controller) Session() *Session {
	return c.session
}

// Attempts returns the current attempt counters.
func (c *Controller) Attempts() AttemptState {
	return c.attempts
}

// Grade returns the grading data received so far.
func (c *Controller) Grade() GradeState {
	return c.grade
}

// Gates computes the current control state.
func (c *Controller) Gates() UiGateState {
	return ComputeGates(c.session, c.attempts, c.grade)
}

// Err returns the last request failure, cleared when a new request is issued.
func (c *Controller) Err() error {
	return c.err
}

// Breakdown returns the per-question answers with the given outcome. It is
// empty unless extended feedback is enabled, whatever the grader sent.
func (c *Controller) Breakdown(outcome transport.Completion) []transport.AnswerSummary {
	if !c.attempts.EnableExtended() {
		return nil
	}
	return c.grade.breakdown(outcome)
}

// Start locks navigation and displays the first step after those already
// completed.
func (c *Controller) Start() tea.Cmd {
	c.lock()
	c.session.cursor.seek(c.initialStep)
	return c.displayNextChild()
}

// Next moves to the following step. In review it continues the replay.
func (c *Controller) Next() tea.Cmd {
	if !c.Gates().Next.Usable() {
		return nil
	}
	if c.session.Mode == ModeReview {
		return c.reviewNextChild()
	}
	return c.displayNextChild()
}

// Submit sends the active child's answer for grading.
func (c *Controller) Submit() tea.Cmd {
	if !c.Gates().Submit.Usable() {
		return nil
	}
	child, _ := c.session.Current()
	c.session.Submitting = true
	c.err = nil
	return c.pipeline.Submit(child)
}

// Changed re-validates the active child after its answer was edited.
// Edits after the step was answered are ignored.
func (c *Controller) Changed() {
	if c.session.Mode != ModeLive || c.session.Answered {
		return
	}
	c.validate()
}

// Review shows the grade summary.
func (c *Controller) Review() tea.Cmd {
	g := c.Gates()
	if !g.Review.Usable() && !g.ReviewLink.Usable() {
		return nil
	}
	return c.renderGrade()
}

// TryAgain asks the grader to reset progress. It does nothing once attempts
// are exhausted.
func (c *Controller) TryAgain() tea.Cmd {
	if c.attempts.NoMoreAttempts() || !c.Gates().TryAgain.Usable() {
		return nil
	}
	c.err = nil
	return c.pipeline.TryAgain()
}

// JumpTo replays the graded step at index i.
func (c *Controller) JumpTo(i int) tea.Cmd {
	if !c.attempts.EnableExtended() {
		return nil
	}
	if _, ok := c.session.Child(i); !ok {
		return nil
	}
	return c.reviewDisplayChild(i)
}

// JumpToName replays the graded step with the given name.
func (c *Controller) JumpToName(name string) tea.Cmd {
	i := c.session.cursor.IndexOf(name)
	if i < 0 {
		c.log.Debug("review link to unknown child", zap.String("name", name))
		return nil
	}
	return c.JumpTo(i)
}

// Update applies a grading result. Messages of other types are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		if !c.pipeline.Accept(msg.Token) {
			return nil
		}
		c.session.Submitting = false
		if msg.Err != nil {
			c.fail("submit", msg.Err)
			return nil
		}
		c.handleResults(msg.Resp.Step, msg.Resp.Completed, msg.Resp.MaxAttempts, msg.Resp.NumAttempts)
		c.attempts.ExtendedFeedback = msg.Resp.ExtendedFeedback
		c.grade.applySubmit(msg.Resp)
		return nil

	case ResultsMsg:
		if !c.pipeline.Accept(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			c.fail("get_results", msg.Err)
			return nil
		}
		if msg.Resp.Error != "" {
			c.log.Warn("results unavailable", zap.String("error", msg.Resp.Error))
			return nil
		}
		c.handleResults(msg.Resp.Step, msg.Resp.Completed, msg.Resp.MaxAttempts, msg.Resp.NumAttempts)
		c.grade.applyResults(msg.Resp)
		if child, ok := c.session.Current(); ok {
			dispatchReview(child, msg.Resp, c.attempts.Options())
		}
		return nil

	case TryAgainResultMsg:
		if !c.pipeline.Accept(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			c.fail("try_again", msg.Err)
			return nil
		}
		if msg.Resp.Result != transport.ResultSuccess {
			c.log.Info("try again refused", zap.String("message", msg.Resp.Message))
			return nil
		}
		c.session.cursor.Reset()
		c.lock()
		return c.displayNextChild()
	}
	return nil
}

// handleResults records a grading response. Only a response for the active
// step marks it answered, which is what unlocks navigation.
func (c *Controller) handleResults(step int, completed transport.Completion, maxAttempts, numAttempts int) {
	c.attempts.record(maxAttempts, numAttempts)
	c.session.Checkmark = completed
	if completed == transport.CompletionNone {
		c.session.Checkmark = transport.CompletionIncorrect
	}

	if step != c.session.ActiveIndex()+1 {
		c.log.Debug("response for inactive step",
			zap.Int("step", step),
			zap.Int("active", c.session.ActiveIndex()),
		)
		c.session.Rejected = true
		return
	}
	c.session.Answered = true
}

func (c *Controller) fail(op string, err error) {
	c.err = err
	c.log.Warn("grading request failed", zap.String("op", op), zap.Error(err))
}

func (c *Controller) displayNextChild() tea.Cmd {
	c.session.clean()
	c.session.Mode = ModeLive
	if skipped := c.session.cursor.Advance(); len(skipped) > 0 {
		c.log.Debug("skipped non-displayable children", zap.Ints("indices", skipped))
	}
	if c.session.IsDone() {
		return c.renderGrade()
	}

	var cmd tea.Cmd
	if child, ok := c.session.Current(); ok && child.Displayable {
		child.display(DisplayOptions{Attempts: c.attempts.Options()})
		cmd = c.publish(telemetry.EventShown, child.Name)
	}
	c.postDisplay()
	return cmd
}

func (c *Controller) reviewNextChild() tea.Cmd {
	c.session.cursor.Advance()
	if c.session.IsDone() {
		return c.renderGrade()
	}
	return c.reviewDisplayChild(c.session.ActiveIndex())
}

func (c *Controller) reviewDisplayChild(i int) tea.Cmd {
	c.session.clean()
	c.session.cursor.JumpTo(i)
	c.session.Mode = ModeReview

	child, _ := c.session.Current()
	child.display(DisplayOptions{Review: true, Attempts: c.attempts.Options()})
	c.postDisplay()
	c.err = nil
	return tea.Batch(
		c.publish(telemetry.EventReview, child.Name),
		c.pipeline.GetResults(child),
	)
}

// postDisplay resets per-step flags and validates the new child. Validation
// always runs, even when its result cannot enable anything.
func (c *Controller) postDisplay() {
	c.session.resetStep()
	c.validate()
}

func (c *Controller) validate() {
	child, ok := c.session.Current()
	if !ok {
		return
	}
	c.session.Valid = child.validate()
}

func (c *Controller) renderGrade() tea.Cmd {
	c.unlock()
	c.session.clean()
	c.session.GradeShown = true
	return nil
}

func (c *Controller) lock() {
	c.session.Locked = true
	c.notify(telemetry.NavLock)
}

func (c *Controller) unlock() {
	c.session.Locked = false
	c.notify(telemetry.NavUnlock)
}

func (c *Controller) notify(state telemetry.NavState) {
	if c.notifier != nil {
		c.notifier.NotifyNavigation(state)
	}
}

// publish returns a command that emits a telemetry event. Its outcome is
// logged and never reaches the session.
func (c *Controller) publish(eventType, exerciseID string) tea.Cmd {
	if c.publisher == nil {
		return nil
	}
	pub, log := c.publisher, c.log
	ev := telemetry.Event{EventType: eventType, ExerciseID: exerciseID}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := pub.Publish(ctx, ev); err != nil {
			log.Warn("publish telemetry", zap.String("event_type", ev.EventType), zap.Error(err))
		}
		return nil
	}
}
