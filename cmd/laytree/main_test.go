// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `
name: root
components:
  - kind: group
children:
  - name: label
    components:
      - kind: text
        data:
          text: hello
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0o644))
	return path
}

func TestDumpCmd(t *testing.T) {
	cmd := dumpCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeSnapshot(t)})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "- root (1 children")
	assert.Contains(t, out.String(), "[elements.Text]")
}

func TestDumpCmdMissingFile(t *testing.T) {
	cmd := dumpCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, cmd.Execute())
}

func TestSizeCmd(t *testing.T) {
	cmd := sizeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeSnapshot(t), "--axis", "horizontal"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "/root Horizontal:")
	assert.Contains(t, out.String(), "/root/label Horizontal:")
	assert.NotContains(t, out.String(), "Vertical")
}

func TestSizeCmdBadAxis(t *testing.T) {
	cmd := sizeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{writeSnapshot(t), "--axis", "diagonal"})
	assert.Error(t, cmd.Execute())
}
