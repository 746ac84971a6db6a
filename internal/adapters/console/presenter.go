// Package console presents drafts on a terminal and reads the verdict from a line-oriented reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/meeting-prep-assistant/internal/adapters/render"
	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
)

const (
	satisfiedPrompt = "%s: Are you satisfied with the generated tasks? (yes/no): "
	feedbackPrompt  = "Please provide your feedback to improve the tasks:\n"
	retryMessage    = "Please answer yes or no."
)

// ErrNoResponse means the input closed before a verdict was read.
var ErrNoResponse = errors.New("no response on input")

type Presenter struct {
	in     *bufio.Reader
	out    io.Writer
	render func(domain.MeetingContext, domain.TaskDraft, render.DraftOptions) (string, error)
}

var _ ports.Presenter = (*Presenter)(nil)

func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		in:     bufio.NewReader(in),
		out:    out,
		render: render.Draft,
	}
}

func (p *Presenter) Present(ctx context.Context, presentation ports.Presentation) (domain.Response, error) {
	view, err := p.render(presentation.Meeting, presentation.Draft, render.DraftOptions{})
	if err != nil {
		return domain.Response{}, fmt.Errorf("render draft: %w", err)
	}
	if _, err := fmt.Fprintf(p.out, "%s\n\n", view); err != nil {
		return domain.Response{}, fmt.Errorf("write draft: %w", err)
	}

	label := render.IterationLabel(presentation.Iteration, presentation.MaxIterations)
	for {
		if err := ctx.Err(); err != nil {
			return domain.Response{}, err
		}

		if _, err := fmt.Fprintf(p.out, satisfiedPrompt, label); err != nil {
			return domain.Response{}, fmt.Errorf("write prompt: %w", err)
		}

		answer, err := p.readLine()
		if err != nil {
			return domain.Response{}, err
		}

		verdict, ok := domain.ParseVerdict(answer)
		if !ok {
			if _, err := fmt.Fprintln(p.out, retryMessage); err != nil {
				return domain.Response{}, fmt.Errorf("write prompt: %w", err)
			}
			continue
		}

		if verdict == domain.VerdictAccept {
			return domain.Accept(), nil
		}

		if _, err := fmt.Fprint(p.out, feedbackPrompt); err != nil {
			return domain.Response{}, fmt.Errorf("write prompt: %w", err)
		}

		comment, err := p.readLine()
		if err != nil && !errors.Is(err, ErrNoResponse) {
			return domain.Response{}, err
		}

		return domain.Reject(strings.TrimSpace(comment)), nil
	}
}

// readLine returns a trailing unterminated line as-is and ErrNoResponse once input is exhausted.
func (p *Presenter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrNoResponse
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read response: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
