package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/problem"
	"github.com/koba-e964/atcoder-tools/scaffold"
	"github.com/koba-e964/atcoder-tools/workspace"
)

var genCmd = &cobra.Command{
	Use:   "gen <problem.yaml>",
	Short: "Generate starter code for a problem description",
	Args:  cobra.ExactArgs(1),
	RunE:  runGen,
}

func init() {
	genCmd.Flags().String("contest", "", "Contest ID (required unless --stdout)")
	genCmd.Flags().String("problem", "", "Problem ID (required unless --stdout)")
	genCmd.Flags().Bool("stdout", false, "Print the code instead of writing it to the workspace")
	genCmd.Flags().Bool("overwrite", false, "Replace an existing source file")
}

func runGen(cmd *cobra.Command, args []string) error {
	toStdout, _ := cmd.Flags().GetBool("stdout")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	contestID, _ := cmd.Flags().GetString("contest")
	problemID, _ := cmd.Flags().GetString("problem")

	if !toStdout && (contestID == "" || problemID == "") {
		return fmt.Errorf("--contest and --problem are required unless --stdout is set")
	}

	p, err := problem.LoadFile(args[0])
	if err != nil {
		return err
	}

	var (
		svc *scaffold.Service
		log *zap.Logger
	)
	app := fx.New(
		appModule(cmd, writerOptions{overwrite: overwrite}),
		fx.Populate(&svc, &log),
	)
	if err := app.Err(); err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := app.Start(context.Background()); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	if toStdout {
		code, err := svc.Generate(p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), code)
		return err
	}

	path, err := svc.Scaffold(contestID, problemID, p)
	if errors.Is(err, workspace.ErrFileExists) {
		log.Warn("kept existing source file, pass --overwrite to replace it", zap.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
