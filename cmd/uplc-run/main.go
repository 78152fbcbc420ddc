// Copyright 2024 The uplc-go Authors
// This file is part of the uplc-go library.
//
// The uplc-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The uplc-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the uplc-go library. If not, see <http://www.gnu.org/licenses/>.

// uplc-run decodes a flat-encoded Untyped Plutus Core program and runs it
// to normal form under the CEK machine, reporting the result term or the
// machine error, the consumed budget, and any trace logs emitted.
package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/uplc-go/uplc/eval"
	"github.com/uplc-go/uplc/log"
	"github.com/uplc-go/uplc/params"
)

var (
	HexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "the input file holds hex text instead of raw flat bytes",
	}
	BudgetMemFlag = cli.Int64Flag{
		Name:  "budget-mem",
		Usage: "starting ex-budget memory units (0 keeps the protocol default)",
	}
	BudgetCpuFlag = cli.Int64Flag{
		Name:  "budget-cpu",
		Usage: "starting ex-budget CPU units (0 keeps the protocol default)",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log verbosity: 0=trace .. 5=crit",
		Value: int(log.LevelInfo),
	}
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "evaluate a flat-encoded program",
	ArgsUsage: "<script-file>",
	Flags:     []cli.Flag{HexFlag, BudgetMemFlag, BudgetCpuFlag},
	Action:    runCmd,
}

func readScript(ctx *cli.Context) ([]byte, error) {
	path := ctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("must supply a script file path")
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if ctx.Bool(HexFlag.Name) {
		decoded, err := hex.DecodeString(string(trimNewline(raw)))
		if err != nil {
			return nil, fmt.Errorf("decoding hex input: %w", err)
		}
		return decoded, nil
	}
	return raw, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func runCmd(ctx *cli.Context) error {
	log.SetLevel(log.Level(ctx.Int(VerbosityFlag.Name)))

	data, err := readScript(ctx)
	if err != nil {
		return err
	}

	program, err := eval.DecodeProgram(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	opts := eval.OptionsForVersion(program.Version)
	log.Info("decoded program", "version", program.Version.String(), "constrCase", params.ConfigForVersion(program.Version).AllowConstrCase)

	if mem := ctx.Int64(BudgetMemFlag.Name); mem != 0 {
		opts.Budget.Mem = mem
	}
	if cpu := ctx.Int64(BudgetCpuFlag.Name); cpu != 0 {
		opts.Budget.Cpu = cpu
	}

	result := eval.Eval(program, opts)
	printResult(result)
	if result.Err != nil {
		return cli.NewExitError(result.Err.Error(), 1)
	}
	return nil
}

func printResult(result eval.Result) {
	if result.Err != nil {
		log.Error("evaluation failed", "error", result.Err)
	} else {
		fmt.Printf("result: %+v\n", result.Term)
	}
	fmt.Printf("budget consumed: mem=%d cpu=%d\n", result.Info.ConsumedBudget.Mem, result.Info.ConsumedBudget.Cpu)
	for _, line := range result.Info.Logs {
		fmt.Println("log:", line)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "uplc-run"
	app.Usage = "Untyped Plutus Core evaluator"
	app.Version = params.Version
	app.Flags = []cli.Flag{VerbosityFlag, HexFlag, BudgetMemFlag, BudgetCpuFlag}
	app.Commands = []cli.Command{runCommand}
	app.Action = runCommand.Action

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
