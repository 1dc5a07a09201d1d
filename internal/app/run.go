package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/treegrid/internal/ctxlog"
	"github.com/specialistvlad/treegrid/internal/render"
)

// renderOptions resolves the configured color mode against w.
func (a *App) renderOptions(w io.Writer) render.Options {
	return render.Options{
		Color:    render.ShouldColor(w, a.config.Color),
		MaxDepth: a.config.MaxDepth,
	}
}

// Run builds the forest and renders it to w in the configured output.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	renderFn, err := render.ForOutput(a.config.Output)
	if err != nil {
		return err
	}

	forest, err := a.build(ctx)
	if err != nil {
		return err
	}
	if len(forest.Roots) == 0 {
		a.logger.Warn("No records found, nothing to render.")
	}

	if err := renderFn(w, forest.Roots, a.renderOptions(w)); err != nil {
		return fmt.Errorf("failed to render forest: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Validate builds the forest and reports whether it is valid. With listIDs
// every indexed id follows the summary, one per line in pre-order.
func (a *App) Validate(ctx context.Context, w io.Writer, listIDs bool) error {
	forest, err := a.build(a.Context(ctx))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ok: %d records, %d roots\n", forest.Index.Len(), len(forest.Index.Roots())); err != nil {
		return err
	}
	if !listIDs {
		return nil
	}
	for _, id := range forest.Index.IDs() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// RunQuery builds the forest, answers one query and writes the result to w.
// The text output prints one node per line; OpLevel prints the number only.
func (a *App) RunQuery(ctx context.Context, w io.Writer, id, op string, level int) error {
	ctx = ctxlog.With(a.Context(ctx), "query_id", id, "op", op)
	forest, err := a.build(ctx)
	if err != nil {
		return err
	}

	res, err := forest.Query(id, op, level)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Query answered.", "result_count", len(res.Nodes))

	if op == OpLevel && a.config.Output == "text" {
		_, err := fmt.Fprintln(w, res.Level)
		return err
	}

	return render.List(w, a.config.Output, res.Nodes, a.renderOptions(w))
}

