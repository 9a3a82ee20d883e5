package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/lvroute/tsp"
)

const squareRequest = `{"id":"sq","names":["A","B","C","D"],"distance":[[0,10,14,10],[10,0,10,14],[14,10,0,10],[10,14,10,0]],"return_to_start":true}`

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "lvroute.prom")
	cfgPath := filepath.Join(dir, "lvroute.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[log]
level = "error"

[batch]
workers      = 2
metrics_file = "`+filepath.ToSlash(metrics)+`"
`), 0o600))

	in := strings.NewReader(`[` + squareRequest + `, {"id":"bad"}]`)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath}, in, &out))

	var resps []Response
	require.NoError(t, sonnet.Unmarshal(out.Bytes(), &resps))
	require.Len(t, resps, 2)

	require.Equal(t, "sq", resps[0].ID)
	require.Equal(t, []int{0, 1, 2, 3, 0}, resps[0].Order)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, resps[0].Names)
	require.Equal(t, 40.0, resps[0].TotalDistance)
	require.Empty(t, resps[0].Error)

	require.Equal(t, "bad", resps[1].ID)
	require.Equal(t, errNoMatrix.Error(), resps[1].Error)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), "lvroute_optimize_total")
}

func TestRunFilesAndFlags(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(inPath, []byte(squareRequest), 0o600))

	err := run(context.Background(), []string{"-in", inPath, "-out", outPath, "-timeout", "1s"}, nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var resps []Response
	require.NoError(t, sonnet.Unmarshal(data, &resps))
	require.Len(t, resps, 1)
	require.Equal(t, 40.0, resps[0].TotalDistance)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(context.Background(), []string{"-nope"}, strings.NewReader(""), &out))
	require.Error(t, run(context.Background(), nil, strings.NewReader(""), &out))
	require.Error(t, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, strings.NewReader(squareRequest), &out))
}

func TestBatchRunnerKeepsOrder(t *testing.T) {
	opt, err := tsp.NewOptimizer(tsp.WithExact(false))
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()

	reqs := make([]Request, 0, 12)
	for i := 0; i < 12; i++ {
		r := Request{ID: string(rune('a' + i))}
		if i%3 != 0 {
			r.Distance = [][]float64{{0, float64(i)}, {float64(i), 0}}
		}
		reqs = append(reqs, r)
	}

	b := &batchRunner{opt: opt, log: logger, workers: 3, speedKmh: 30}
	resps, err := b.run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, resps, len(reqs))
	for i, r := range resps {
		require.Equal(t, reqs[i].ID, r.ID)
		if i%3 == 0 {
			require.NotEmpty(t, r.Error)
			continue
		}
		require.Empty(t, r.Error)
		require.Equal(t, float64(i), r.TotalDistance)
	}

	var warns int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warns++
		}
	}
	require.Equal(t, 4, warns)
}
