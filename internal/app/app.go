// Package app runs the interactive quiz loop on a plain line-oriented
// terminal. It owns the wall-clock ticker and the snapshot-on-quit
// behavior; all quiz semantics live in the quiz package.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/prasadg/medprep/internal/quiz"
	"github.com/prasadg/medprep/internal/store"
)

// Options wires the runner's collaborators. Engine is required; the rest
// default to sensible values.
type Options struct {
	Engine    *quiz.Engine
	Snapshots store.SnapshotRepo
	Logger    zerolog.Logger
	In        io.Reader // defaults to os.Stdin
	Out       io.Writer // defaults to os.Stdout
}

// snapshotsToKeep bounds the resume history retained per database.
const snapshotsToKeep = 10

type runner struct {
	engine    *quiz.Engine
	snapshots store.SnapshotRepo
	log       zerolog.Logger
	in        *bufio.Scanner
	out       io.Writer
}

// Run drives the session until it is submitted or the user quits. A quit
// while the session is still live saves a snapshot so a later run can
// resume it.
func Run(opts Options) error {
	if opts.Engine == nil {
		return errors.New("app: engine is required")
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	r := &runner{
		engine:    opts.Engine,
		snapshots: opts.Snapshots,
		log:       opts.Logger,
		in:        bufio.NewScanner(in),
		out:       out,
	}
	return r.run()
}

func (r *runner) run() error {
	// A restored session already has its start stamped; resume its clock
	// instead of re-starting it.
	if sess, ok := r.engine.Session(); ok && !sess.StartTime.IsZero() {
		r.engine.Resume()
	} else if err := r.engine.Start(); err != nil {
		return err
	}

	// Drive the countdown from a wall-clock ticker. The engine ignores
	// ticks while paused or untimed, so the ticker runs unconditionally.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.engine.Tick()
			case <-done:
				return
			}
		}
	}()

	r.printSession()
	r.printQuestion()

	for {
		if r.engine.HasSubmittedResults() {
			r.printSummary()
			return nil
		}

		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			// EOF behaves like quit.
			return r.quit()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		stop, err := r.dispatch(line)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// dispatch handles one input line. It returns stop=true when the loop
// should end.
func (r *runner) dispatch(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	cmd, args := fields[0], fields[1:]

	// A bare number answers the current question.
	if n, err := strconv.Atoi(cmd); err == nil {
		r.answer(n)
		return false, nil
	}

	switch cmd {
	case "n", "next":
		return r.next()
	case "p", "prev":
		r.engine.PreviousQuestion()
		r.printQuestion()
	case "g", "goto":
		r.goTo(args)
	case "b", "bookmark":
		r.toggleBookmark()
	case "marks":
		r.printBookmarks()
	case "wrong":
		r.printWrong()
	case "f", "finish":
		return r.finish()
	case "t", "time":
		r.printTime()
	case "score":
		fmt.Fprintf(r.out, "score: %d (%d answered)\n", r.engine.Score(), r.engine.AnswerCount())
	case "q", "quit":
		return true, r.quit()
	case "h", "help", "?":
		r.printHelp()
	default:
		fmt.Fprintf(r.out, "unknown command %q (try: help)\n", cmd)
	}
	return false, nil
}

func (r *runner) answer(n int) {
	q, ok := r.engine.CurrentQuestion()
	if !ok {
		fmt.Fprintln(r.out, "no current question")
		return
	}
	if n < 1 || n > len(q.Options) {
		fmt.Fprintf(r.out, "choose an option between 1 and %d\n", len(q.Options))
		return
	}
	if !r.engine.SubmitAnswer(q.ID, n-1) {
		fmt.Fprintln(r.out, "answer not accepted (session may be finished)")
		return
	}
	fmt.Fprintln(r.out, "recorded")
}

func (r *runner) next() (bool, error) {
	last := r.engine.CurrentIndex() == len(r.engine.Questions())-1
	if last {
		fmt.Fprintln(r.out, "last question reached, submitting...")
	}
	err := r.engine.NextQuestion(context.Background())
	if err != nil {
		return r.handleFinishErr(err)
	}
	if r.engine.HasSubmittedResults() {
		r.printSummary()
		return true, nil
	}
	r.printQuestion()
	return false, nil
}

func (r *runner) goTo(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: goto <question number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !r.engine.GoToQuestion(n-1) {
		fmt.Fprintf(r.out, "no question %s\n", args[0])
		return
	}
	r.printQuestion()
}

func (r *runner) toggleBookmark() {
	q, ok := r.engine.CurrentQuestion()
	if !ok {
		fmt.Fprintln(r.out, "no current question")
		return
	}
	if r.engine.IsBookmarked(q.ID) {
		r.engine.UnbookmarkQuestion(q.ID)
		fmt.Fprintln(r.out, "bookmark removed")
		return
	}
	if r.engine.BookmarkQuestion(q.ID) {
		fmt.Fprintln(r.out, "bookmarked")
	}
}

func (r *runner) finish() (bool, error) {
	fmt.Fprintln(r.out, "submitting...")
	if err := r.engine.FinishQuiz(context.Background()); err != nil {
		return r.handleFinishErr(err)
	}
	r.printSummary()
	return true, nil
}

// handleFinishErr distinguishes recoverable submission failures, which keep
// the loop alive so the user can retry, from fatal ones.
func (r *runner) handleFinishErr(err error) (bool, error) {
	switch {
	case errors.Is(err, quiz.ErrFinishInProgress):
		fmt.Fprintln(r.out, "submission already in progress")
		return false, nil
	case errors.Is(err, quiz.ErrAlreadyFinished):
		r.printSummary()
		return true, nil
	default:
		r.log.Error().Err(err).Msg("submission failed")
		fmt.Fprintln(r.out, "submission failed; type finish to retry or quit to save for later")
		return false, nil
	}
}

// quit pauses the session and persists a snapshot so the attempt can be
// resumed by a later invocation.
func (r *runner) quit() error {
	r.engine.Pause()

	snap := r.engine.Snapshot()
	if snap == nil || r.engine.HasSubmittedResults() || r.snapshots == nil {
		return nil
	}

	data, err := snap.ToMap()
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.snapshots.Save(ctx, &store.Snapshot{
		SessionID: snap.Session.ID,
		Data:      data,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := r.snapshots.Prune(ctx, snapshotsToKeep); err != nil {
		r.log.Warn().Err(err).Msg("prune snapshots")
	}
	fmt.Fprintln(r.out, "session saved; resume with: medprep play --resume")
	return nil
}

func (r *runner) printSession() {
	sess, ok := r.engine.Session()
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "%s — %s mode, %d questions", sess.SpecialtyName, sess.Mode, len(r.engine.Questions()))
	if sess.TimeLimit > 0 {
		fmt.Fprintf(r.out, ", %s", formatSeconds(sess.TimeLimit))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "type help for commands")
}

func (r *runner) printQuestion() {
	q, ok := r.engine.CurrentQuestion()
	if !ok {
		return
	}
	idx := r.engine.CurrentIndex()
	marker := ""
	if r.engine.IsBookmarked(q.ID) {
		marker = " [marked]"
	}
	fmt.Fprintf(r.out, "\nQ%d/%d%s: %s\n", idx+1, len(r.engine.Questions()), marker, q.Text)
	for i, opt := range q.Options {
		prefix := "   "
		if ans, answered := r.engine.AnswerFor(q.ID); answered && ans.SelectedOption == i {
			prefix = " * "
		}
		fmt.Fprintf(r.out, "%s%d) %s\n", prefix, i+1, opt)
	}
}

func (r *runner) printBookmarks() {
	marks := r.engine.Bookmarks()
	if len(marks) == 0 {
		fmt.Fprintln(r.out, "no bookmarks")
		return
	}
	fmt.Fprintf(r.out, "bookmarked: %s\n", strings.Join(marks, ", "))
}

func (r *runner) printWrong() {
	wrong := r.engine.WrongAnswers()
	if len(wrong) == 0 {
		fmt.Fprintln(r.out, "no wrong answers so far")
		return
	}
	fmt.Fprintf(r.out, "wrong so far: %s\n", strings.Join(wrong, ", "))
}

func (r *runner) printTime() {
	sess, ok := r.engine.Session()
	if !ok || sess.TimeLimit == 0 {
		fmt.Fprintln(r.out, "untimed session")
		return
	}
	fmt.Fprintf(r.out, "time remaining: %s\n", formatSeconds(r.engine.TimeRemaining()))
}

func (r *runner) printSummary() {
	fmt.Fprintln(r.out, "\n=== session complete ===")
	fmt.Fprintf(r.out, "score: %d\n", r.engine.Score())
	fmt.Fprintf(r.out, "answered: %d/%d\n", r.engine.AnswerCount(), len(r.engine.Questions()))
	if res, ok := r.engine.Result(); ok {
		fmt.Fprintf(r.out, "correct: %d/%d\n", res.CorrectAnswers, res.TotalQuestions)
		if res.PointsEarned > 0 || res.XPEarned > 0 {
			fmt.Fprintf(r.out, "points: %d  xp: %d\n", res.PointsEarned, res.XPEarned)
		}
	}
	if wrong := r.engine.WrongAnswers(); len(wrong) > 0 {
		fmt.Fprintf(r.out, "review these: %s\n", strings.Join(wrong, ", "))
	}
	if marks := r.engine.Bookmarks(); len(marks) > 0 {
		fmt.Fprintf(r.out, "bookmarked: %s\n", strings.Join(marks, ", "))
	}
}

func (r *runner) printHelp() {
	fmt.Fprint(r.out, `commands:
  1..9        answer the current question with that option
  n, next     go to the next question (submits after the last one)
  p, prev     go to the previous question
  g, goto N   jump to question N
  b, bookmark toggle a bookmark on the current question
  marks       list bookmarked questions
  wrong       list questions answered incorrectly so far
  t, time     show remaining time
  score       show current score
  f, finish   submit the session now
  q, quit     save the session and exit
`)
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
