package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/numtheory"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

// ExplainCommandHandler prints step-by-step traces of the number-theoretic
// algorithms behind RSA.
type ExplainCommandHandler struct {
	logger logger.Logger
}

// NewExplainCommandHandler initializes a new ExplainCommandHandler.
func NewExplainCommandHandler() (*ExplainCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ExplainCommandHandler{logger: loggerInstance}, nil
}

// ExplainModExpCmd prints every square-and-multiply iteration of a modular
// exponentiation.
func (commandHandler *ExplainCommandHandler) ExplainModExpCmd(cmd *cobra.Command, _ []string) {
	baseFlag, err := cmd.Flags().GetString("base")
	if err != nil {
		commandHandler.logger.Error("invalid base flag: ", err)
		return
	}
	exponentFlag, err := cmd.Flags().GetString("exponent")
	if err != nil {
		commandHandler.logger.Error("invalid exponent flag: ", err)
		return
	}
	modulusFlag, err := cmd.Flags().GetString("modulus")
	if err != nil {
		commandHandler.logger.Error("invalid modulus flag: ", err)
		return
	}

	base, err := parseBigInt(baseFlag, "base")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	exponent, err := parseBigInt(exponentFlag, "exponent")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	modulus, err := parseBigInt(modulusFlag, "modulus")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, steps, err := numtheory.ModExpSteps(base, exponent, modulus)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Computing %v^%v mod %v by repeated squaring:\n", base, exponent, modulus)
	for i, step := range steps {
		fmt.Printf("step %d: result = %v, base = %v, exponent = %v\n",
			i+1, step.Accumulator, step.Base, step.Exponent)
	}
	fmt.Printf("Result: %v\n", result)
}

// ExplainGCDCmd prints the extended Euclidean recursion frames in unwinding
// order together with the final Bezout identity.
func (commandHandler *ExplainCommandHandler) ExplainGCDCmd(cmd *cobra.Command, _ []string) {
	aFlag, err := cmd.Flags().GetString("a")
	if err != nil {
		commandHandler.logger.Error("invalid a flag: ", err)
		return
	}
	bFlag, err := cmd.Flags().GetString("b")
	if err != nil {
		commandHandler.logger.Error("invalid b flag: ", err)
		return
	}

	a, err := parseBigInt(aFlag, "a")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	b, err := parseBigInt(bFlag, "b")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	g, x, y, steps := numtheory.ExtGCDSteps(a, b)

	fmt.Printf("Extended Euclidean algorithm for gcd(%v, %v):\n", a, b)
	for _, step := range steps {
		fmt.Println(step)
	}
	fmt.Printf("gcd = %v, with %v*(%v) + %v*(%v) = %v\n", g, a, x, b, y, g)
}

// InitExplainCommands registers the algorithm explanation commands
func InitExplainCommands(rootCmd *cobra.Command) error {
	handler, err := NewExplainCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create explain command handler: %w", err)
	}

	var explainModExpCmd = &cobra.Command{
		Use:   "explain-modexp",
		Short: "Show the steps of a modular exponentiation",
		Run:   handler.ExplainModExpCmd,
	}
	explainModExpCmd.Flags().StringP("base", "", "0", "Base as a decimal integer")
	explainModExpCmd.Flags().StringP("exponent", "", "0", "Exponent as a decimal integer")
	explainModExpCmd.Flags().StringP("modulus", "", "2", "Modulus as a decimal integer")
	rootCmd.AddCommand(explainModExpCmd)

	var explainGCDCmd = &cobra.Command{
		Use:   "explain-gcd",
		Short: "Show the steps of the extended Euclidean algorithm",
		Run:   handler.ExplainGCDCmd,
	}
	explainGCDCmd.Flags().StringP("a", "", "0", "First operand as a decimal integer")
	explainGCDCmd.Flags().StringP("b", "", "0", "Second operand as a decimal integer")
	rootCmd.AddCommand(explainGCDCmd)

	return nil
}
