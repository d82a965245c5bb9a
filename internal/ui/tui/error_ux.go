package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/byobox/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into one short line for the status toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ce *domain.ConstraintError
	if errors.As(err, &ce) {
		if ce.Message != "" {
			return ce.Message
		}
		return "Selection not allowed"
	}

	var se *domain.SubmitError
	if errors.As(err, &se) {
		switch se.Kind {
		case domain.SubmitErrorTimeout:
			return "The store took too long to respond"
		case domain.SubmitErrorDNS, domain.SubmitErrorConn:
			return "Could not reach the store"
		case domain.SubmitErrorDecode:
			return "The store sent an unreadable response"
		}
		if se.Message != "" {
			return se.Message
		}
		return "Failed to add items to cart"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "catalog."):
				return "Catalog not found"
			case strings.HasPrefix(oe.Op, "workspace."):
				return "Workspace not found"
			case strings.HasPrefix(oe.Op, "box."):
				return "Box not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid catalog " + base

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
