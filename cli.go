package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"nines/internal/logging"
	"nines/internal/reach"
)

type config struct {
	digit     int
	count     int
	policy    string
	target    int64
	hasTarget bool
	debug     bool
	logJSON   bool
	quiet     bool
}

// これを超えると S[count] が大きくなり計算に時間がかかる
const slowCount = 10

var errNegativeTarget = errors.New("target must be a non-negative integer")

func (c *config) validate() error {
	if c.digit < 0 || c.digit > 9 {
		return fmt.Errorf("%w: got %d", reach.ErrInvalidDigit, c.digit)
	}
	if c.count < 1 || c.count > reach.MaxCount {
		return fmt.Errorf("%w: got %d", reach.ErrInvalidCount, c.count)
	}
	if c.hasTarget && c.target < 0 {
		return fmt.Errorf("%w: got %d", errNegativeTarget, c.target)
	}
	if _, err := reach.ParsePolicy(c.policy); err != nil {
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "nines",
		Short: "同じ数字 c 個と四則演算で作れない最小の非負整数を求める",
		Long: `数字 --digit をちょうど --count 個使い、+ - * / と任意の括弧で作れる値を
すべて列挙し、作れない最小の非負整数を標準出力に表示します。

例:
  nines                      # 9 を 9 個、割り算は切り捨て (floor)
  nines --policy exact       # 割り切れる割り算のみ
  nines -c 4 -d 8            # 8 を 4 個
  nines -c 4 -d 4 -t 7       # 4 を 4 個で 7 が作れるか`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.hasTarget = cmd.Flags().Changed("target")
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.digit, "digit", "d", 9, "式に使う数字 (0-9)")
	f.IntVarP(&cfg.count, "count", "c", 9, fmt.Sprintf("数字を使う個数 (1-%d)", reach.MaxCount))
	f.StringVarP(&cfg.policy, "policy", "p", reach.PolicyFloor, "割り算の扱い: floor / trunc / exact")
	f.Int64VarP(&cfg.target, "target", "t", 0, "指定した値が作れるかだけを判定する")
	f.BoolVar(&cfg.debug, "debug", false, "所要時間などを stderr に出力")
	f.BoolVar(&cfg.logJSON, "log-json", false, "ログを JSON 形式で出力")
	f.BoolVarP(&cfg.quiet, "quiet", "q", false, "ログを一切出力しない")

	return cmd
}

func run(stdout, stderr io.Writer, cfg *config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	div, err := reach.ParsePolicy(cfg.policy)
	if err != nil {
		return err
	}

	level := logging.LevelWarn
	if cfg.debug {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{
		Level:   level,
		Service: "nines",
		JSON:    cfg.logJSON,
		Quiet:   cfg.quiet,
		Output:  stderr,
	}).With("digit", cfg.digit, "count", cfg.count, "policy", cfg.policy)

	if cfg.count > slowCount {
		logger.Warn("large count, enumeration may take a while", "threshold", slowCount)
	}

	start := time.Now()
	tbl, err := reach.Build(cfg.digit, cfg.count, div)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	logger.Debug("build complete", "duration", time.Since(start), "sizes", tbl.Sizes())

	if cfg.hasTarget {
		ok := tbl.Reachable(cfg.target)
		logger.Info("target checked", "target", cfg.target, "reachable", ok)
		verb := "cannot"
		if ok {
			verb = "can"
		}
		_, err = fmt.Fprintf(stdout, "%d %s be computed in %d %ds\n", cfg.target, verb, cfg.count, cfg.digit)
		return err
	}

	gap := tbl.FirstGap()
	logger.Info("first gap", "value", gap)
	_, err = fmt.Fprintln(stdout, gap)
	return err
}
