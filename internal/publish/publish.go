// Package publish stages rendered diagrams and commits them to the git
// repository that contains the output directory.
package publish

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/chordgen/internal/logger"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

var (
	// ErrNothingToCommit is returned when every file is already committed as is.
	ErrNothingToCommit = errors.New("nothing to commit")
	// ErrUnrelatedStaged is returned when the index already holds changes to
	// files other than the diagrams being committed.
	ErrUnrelatedStaged = errors.New("index has unrelated staged changes")
)

const (
	defaultAuthorName  = "chordgen"
	defaultAuthorEmail = "chordgen@localhost"
)

// Options configures the commit author.
type Options struct {
	AuthorName  string
	AuthorEmail string
	// Now overrides the commit timestamp.
	Now func() time.Time
}

// Publisher commits files under a working tree.
type Publisher struct {
	repo *git.Repository
	root string
	opts Options
	log  *logger.Logger
}

// Open locates the repository containing dir, walking up parent directories.
func Open(dir string, opts Options, log *logger.Logger) (*Publisher, error) {
	if log == nil {
		log = logger.Nop()
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, chorderrors.NewIOError("open repository", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, chorderrors.NewIOError("open worktree", dir, err)
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return nil, chorderrors.NewIOError("resolve worktree", wt.Filesystem.Root(), err)
	}

	if opts.AuthorName == "" {
		opts.AuthorName = defaultAuthorName
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = defaultAuthorEmail
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Publisher{repo: repo, root: root, opts: opts, log: log.WithFields(logger.Fields{"repository": root})}, nil
}

// Root returns the worktree root.
func (p *Publisher) Root() string {
	return p.root
}

// Commit stages paths and records a commit with message. It returns the new
// commit hash, or ErrNothingToCommit when staging changed none of paths. It
// refuses with ErrUnrelatedStaged when files outside paths are already
// staged.
func (p *Publisher) Commit(ctx context.Context, paths []string, message string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNothingToCommit
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("commit message is empty")
	}

	wt, err := p.repo.Worktree()
	if err != nil {
		return "", chorderrors.NewIOError("open worktree", p.root, err)
	}

	rels := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		rel, err := p.relative(path)
		if err != nil {
			return "", err
		}
		rels[rel] = struct{}{}
	}

	before, err := wt.Status()
	if err != nil {
		return "", chorderrors.NewIOError("status", p.root, err)
	}
	if unrelated := stagedOutside(before, rels); len(unrelated) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnrelatedStaged, strings.Join(unrelated, ", "))
	}

	for _, rel := range sortedKeys(rels) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := wt.Add(rel); err != nil {
			return "", chorderrors.NewIOError("stage", rel, err)
		}
		p.log.Debug("staged diagram", logger.Fields{"path": rel})
	}

	after, err := wt.Status()
	if err != nil {
		return "", chorderrors.NewIOError("status", p.root, err)
	}
	if !stagedWithin(after, rels) {
		return "", ErrNothingToCommit
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.opts.AuthorName,
			Email: p.opts.AuthorEmail,
			When:  p.opts.Now(),
		},
	})
	if err != nil {
		return "", chorderrors.NewIOError("commit", p.root, err)
	}

	p.log.Info("committed diagrams", logger.Fields{"commit": hash.String(), "files": len(paths)})
	return hash.String(), nil
}

func (p *Publisher) relative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", chorderrors.NewIOError("resolve", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(p.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", chorderrors.NewIOError("stage", path, fmt.Errorf("outside repository %s", p.root))
	}
	return filepath.ToSlash(rel), nil
}

func isStaged(fs *git.FileStatus) bool {
	return fs.Staging != git.Unmodified && fs.Staging != git.Untracked
}

// stagedOutside lists staged paths that are not part of rels.
func stagedOutside(status git.Status, rels map[string]struct{}) []string {
	var out []string
	for path, fs := range status {
		if _, ok := rels[path]; ok || !isStaged(fs) {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func stagedWithin(status git.Status, rels map[string]struct{}) bool {
	for rel := range rels {
		if fs, ok := status[rel]; ok && isStaged(fs) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
