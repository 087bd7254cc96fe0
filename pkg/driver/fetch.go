package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ModulesDirName is the directory dependencies are installed into,
// relative to the manifest.
const ModulesDirName = "lyre_modules"

// Fetcher installs git-sourced program libraries declared in a manifest.
type Fetcher struct {
	dir string
}

// NewFetcher creates a fetcher installing into dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{dir: dir}
}

// Install clones a dependency into the modules directory and returns the
// installed path. An already-installed dependency is left untouched.
func (f *Fetcher) Install(name string, dep *DependencySpec) (string, error) {
	if dep == nil || dep.Git == "" {
		return "", fmt.Errorf("fetch: dependency %q has no git source", name)
	}
	dest := filepath.Join(f.dir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	tempDir, err := os.MkdirTemp("", "lyre-fetch-*")
	if err != nil {
		return "", fmt.Errorf("fetch: create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	repo, err := git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:  dep.Git,
		Tags: git.AllTags,
	})
	if err != nil {
		return "", fmt.Errorf("fetch: clone %s: %w", dep.Git, err)
	}
	if err := checkoutPin(repo, dep); err != nil {
		return "", fmt.Errorf("fetch: checkout %s: %w", name, err)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("fetch: create %s: %w", f.dir, err)
	}
	if err := copyTree(tempDir, dest); err != nil {
		os.RemoveAll(dest)
		return "", fmt.Errorf("fetch: install %s: %w", name, err)
	}
	return dest, nil
}

// InstallAll installs every manifest dependency in name order and returns
// the installed paths.
func (f *Fetcher) InstallAll(m *Manifest) ([]string, error) {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path, err := f.Install(name, m.Dependencies[name])
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func checkoutPin(repo *git.Repository, dep *DependencySpec) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	switch {
	case dep.Rev != "":
		return wt.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(dep.Rev)})
	case dep.Tag != "":
		return wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewTagReferenceName(dep.Tag)})
	case dep.Branch != "":
		return wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(dep.Branch)})
	default:
		return nil
	}
}

// copyTree copies the checked-out work tree, leaving git metadata behind.
func copyTree(src, dest string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == ".git" {
			return filepath.SkipDir
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

func copyFile(src, dest string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
