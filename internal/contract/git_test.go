package contract

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// initScratchRepo creates a throwaway repository with a single commit.
func initScratchRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=Test Author",
			"GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=Test Author",
			"GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	runGit("init", "--quiet")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("scratch\n"), 0o644))
	runGit("add", "README.md")
	runGit("commit", "--quiet", "-m", "Initial commit")
	return dir
}

// TestMockGitClient_Run ensures the mock correctly records and returns
// expected values when its Run method is called.
func TestMockGitClient_Run(t *testing.T) {
	mockClient := new(MockGitClient)

	const expectedRepoPath = "/path/to/repo"
	expectedArgs := []string{"log", "-1", "--oneline"}
	expectedOutput := []byte("a1b2c3d commit message")
	expectedError := errors.New("mocked git error")

	// The Run implementation expands (repoPath, args...) into one argument
	// list for m.Called(), so the .On() setup must match that shape.
	var calledArgs []any
	ctx := context.Background()
	calledArgs = append(calledArgs, ctx, expectedRepoPath)
	for _, arg := range expectedArgs {
		calledArgs = append(calledArgs, arg)
	}

	mockClient.
		On("Run", calledArgs...).
		Return(expectedOutput, expectedError).
		Once()

	actualOutput, actualError := mockClient.Run(ctx, expectedRepoPath, expectedArgs...)

	assert.Equal(t, expectedOutput, actualOutput, "Run should return the programmed output")
	assert.Equal(t, expectedError, actualError, "Run should return the programmed error")
	mockClient.AssertExpectations(t)
}

// TestMockGitClient_GetActivityLog ensures the explicit log method mocks cleanly.
func TestMockGitClient_GetActivityLog(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -7)

	mockClient.On("GetActivityLog", ctx, "/repo", since).Return([]byte("log data"), nil).Once()

	out, err := mockClient.GetActivityLog(ctx, "/repo", since)
	assert.NoError(t, err)
	assert.Equal(t, []byte("log data"), out)
	mockClient.AssertExpectations(t)
}

// TestNewLocalGitClient tests the constructor for LocalGitClient.
func TestNewLocalGitClient(t *testing.T) {
	client := NewLocalGitClient()
	assert.NotNil(t, client, "NewLocalGitClient should return a non-nil client")
	assert.IsType(t, &LocalGitClient{}, client, "NewLocalGitClient should return a LocalGitClient instance")
}

// TestLocalGitClient_Run tests the Run method with failure scenarios.
func TestLocalGitClient_Run(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()

	tests := []struct {
		name     string
		repoPath string
		args     []string
	}{
		{
			name:     "invalid repo path",
			repoPath: "/nonexistent/path",
			args:     []string{"status"},
		},
		{
			name:     "non-repo directory",
			repoPath: t.TempDir(),
			args:     []string{"log", "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Run(ctx, tt.repoPath, tt.args...)
			assert.Error(t, err, "Run should return an error for %s", tt.name)
		})
	}
}

// TestLocalGitClient_GetRepoRoot tests the GetRepoRoot method.
func TestLocalGitClient_GetRepoRoot(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()

	repoPath := initScratchRepo(t)

	root, err := client.GetRepoRoot(ctx, repoPath)
	assert.NoError(t, err, "GetRepoRoot should not return an error inside a repository")
	assert.NotEmpty(t, root, "GetRepoRoot should return a non-empty root path")

	// Test with invalid path
	_, err = client.GetRepoRoot(ctx, "/nonexistent/path")
	assert.Error(t, err, "GetRepoRoot should return an error for non-git directory")
}

// TestLocalGitClient_GetRepoHash tests the GetRepoHash method.
func TestLocalGitClient_GetRepoHash(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()

	repoPath := initScratchRepo(t)

	hash, err := client.GetRepoHash(ctx, repoPath)
	assert.NoError(t, err, "GetRepoHash should not return an error for a repository with commits")
	assert.Len(t, hash, 40, "GetRepoHash should return a full commit hash")

	// Test with non-repo directory
	_, err = client.GetRepoHash(ctx, t.TempDir())
	assert.Error(t, err, "GetRepoHash should return an error outside a repository")
}

// TestLocalGitClient_GetActivityLog tests the GetActivityLog method.
func TestLocalGitClient_GetActivityLog(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()

	repoPath := initScratchRepo(t)

	// Test with a lower bound
	out, err := client.GetActivityLog(ctx, repoPath, time.Now().AddDate(0, 0, -30))
	assert.NoError(t, err, "GetActivityLog should not return an error")
	assert.Contains(t, string(out), "|", "log output should contain header delimiters")

	// Test with zero time (no lower bound)
	_, err = client.GetActivityLog(ctx, repoPath, time.Time{})
	assert.NoError(t, err, "GetActivityLog should not return an error with zero time")
}
