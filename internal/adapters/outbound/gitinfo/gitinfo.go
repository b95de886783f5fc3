// Package gitinfo stamps pipeline runs with the scanned repository's
// current commit, so recorded runs can be tied back to source state.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter reads commit information from a scanned project using go-git.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

// IsGitRepo reports whether projectPath is inside a git work tree.
func (a *Adapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// CommitHash returns the full hash of HEAD.
func (a *Adapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ShortHash returns the first 7 characters of the HEAD hash, or "" when
// projectPath is not a git repository or has no commits.
func (a *Adapter) ShortHash(projectPath string) string {
	hash, err := a.CommitHash(projectPath)
	if err != nil || len(hash) < 7 {
		return ""
	}
	return hash[:7]
}
