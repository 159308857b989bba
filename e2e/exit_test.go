//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.CreatePages("alpha.txt", "beta.txt"))

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("1/2"), "Should show page counter")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	select {
	case exitErr := <-done:
		if exitErr != nil {
			t.Logf("Process exited with 'q' command (exit code: %v)", exitErr)
		}
		return
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
	}

	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (exit code: %v)", exitErr)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
	}
}

func TestApplicationExitRemembersIndex(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.CreatePages("a.txt", "b.txt", "c.txt"))
	require.NoError(t, tf.WriteConfig("remember_index = true\n"))

	require.NoError(t, tf.StartApp("-d", workspace))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("1/3"))

	mark := tf.Mark()
	tf.SendKeys(KeyNext)
	require.True(t, tf.SeeAfter(mark, "2/3"), "Should move to the second page")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	tf.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}
	tf.cmd = nil

	// Second run starts where the first one stopped
	tf2 := NewTUITest(t)
	defer tf2.Cleanup()
	tf2.workspace = workspace
	require.NoError(t, tf2.StartApp("-d", workspace))
	require.True(t, tf2.Ready())
	require.True(t, tf2.SeePlain("2/3"), "Should reopen on the remembered page")
}
