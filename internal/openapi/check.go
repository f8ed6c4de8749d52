package openapi

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// defaultCheckConcurrency bounds how many operations are validated at once.
const defaultCheckConcurrency = 8

// Problem is one broken schema found by Check: the operation it belongs
// to, where inside the operation it sits, and the resolution error.
type Problem struct {
	Path     string
	Method   string
	Location string // e.g. "requestBody application/json", "response 404 application/json"
	Err      error
}

// String formats a problem the way the check command prints it.
func (p Problem) String() string {
	return fmt.Sprintf("%s %s: %s: %v", p.Method, p.Path, p.Location, p.Err)
}

// Check resolves every schema reachable from every operation of the
// document and reports each one that fails. Operations are checked
// concurrently; the result is sorted by path, method, and location so
// output is deterministic. A clean document yields an empty slice.
func Check(ctx context.Context, doc *Document, concurrency int) []Problem {
	if concurrency <= 0 {
		concurrency = defaultCheckConcurrency
	}

	var (
		mu       sync.Mutex
		problems []Problem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, ref := range doc.Operations() {
		ref := ref
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			found := checkOperation(doc, ref)
			if len(found) > 0 {
				mu.Lock()
				problems = append(problems, found...)
				mu.Unlock()
			}
			return nil
		})
	}

	// Workers never return errors; Wait only fences completion.
	_ = g.Wait()

	sort.Slice(problems, func(i, j int) bool {
		if problems[i].Path != problems[j].Path {
			return problems[i].Path < problems[j].Path
		}
		if problems[i].Method != problems[j].Method {
			return methodRank[problems[i].Method] < methodRank[problems[j].Method]
		}
		return problems[i].Location < problems[j].Location
	})

	return problems
}

func checkOperation(doc *Document, ref OperationRef) []Problem {
	var problems []Problem

	report := func(location string, err error) {
		problems = append(problems, Problem{
			Path:     ref.Path,
			Method:   ref.Method,
			Location: location,
			Err:      err,
		})
	}

	op := ref.Operation
	for _, param := range op.Parameters {
		if param.Schema == nil {
			continue
		}
		if _, err := doc.ResolveSchema(param.Schema); err != nil {
			report(fmt.Sprintf("parameter %s", param.Name), err)
		}
	}

	if op.RequestBody != nil {
		for _, mediaType := range op.RequestBody.MediaTypes() {
			schema := op.RequestBody.Content[mediaType].Schema
			if schema == nil {
				continue
			}
			if _, err := doc.ResolveSchema(schema); err != nil {
				report(fmt.Sprintf("requestBody %s", mediaType), err)
			}
		}
	}

	for _, code := range op.ResponseCodes() {
		response := op.Responses[code]
		for _, mediaType := range response.MediaTypes() {
			schema := response.Content[mediaType].Schema
			if schema == nil {
				continue
			}
			if _, err := doc.ResolveSchema(schema); err != nil {
				report(fmt.Sprintf("response %s %s", code, mediaType), err)
			}
		}
	}

	return problems
}
