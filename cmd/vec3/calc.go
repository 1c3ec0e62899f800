package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HWRM/KarosGraveyard/pkg/vecmath"
	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

var (
	calcX1, calcY1, calcZ1 float64
	calcX2, calcY2, calcZ2 float64
	calcScalar             float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculator operations on explicit vectors",
	Long: `Compute a single vector operation from components given as flags.
Unary operations read --x1/--y1/--z1; binary operations additionally
read --x2/--y2/--z2; scale and shrink read --scalar.`,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.PersistentFlags().Float64Var(&calcX1, "x1", 0.0, "X component of first vector")
	calcCmd.PersistentFlags().Float64Var(&calcY1, "y1", 0.0, "Y component of first vector")
	calcCmd.PersistentFlags().Float64Var(&calcZ1, "z1", 0.0, "Z component of first vector")
	calcCmd.PersistentFlags().Float64Var(&calcX2, "x2", 0.0, "X component of second vector")
	calcCmd.PersistentFlags().Float64Var(&calcY2, "y2", 0.0, "Y component of second vector")
	calcCmd.PersistentFlags().Float64Var(&calcZ2, "z2", 0.0, "Z component of second vector")
	calcCmd.PersistentFlags().Float64VarP(&calcScalar, "scalar", "n", 1.0, "Scalar operand")

	calcCmd.AddCommand(
		&cobra.Command{Use: "add", Short: "Sum of two vectors", Run: runBinaryVec(vector.Add)},
		&cobra.Command{Use: "sub", Short: "Difference of two vectors", Run: runBinaryVec(vector.Sub)},
		&cobra.Command{Use: "pow", Short: "Elementwise power", Run: runBinaryVec(vector.Pow)},
		&cobra.Command{Use: "cross", Short: "Cross product", Run: runBinaryVec(vecmath.Cross)},
		&cobra.Command{Use: "dot", Short: "Dot product", Run: runBinaryScalar(vecmath.Dot)},
		&cobra.Command{Use: "angle", Short: "Angle between two vectors (radians)", Run: runBinaryScalar(vecmath.AngleBetween)},
		&cobra.Command{Use: "neg", Short: "Additive inverse", Run: runUnaryVec(vector.Neg)},
		&cobra.Command{Use: "abs", Short: "Elementwise absolute value", Run: runUnaryVec(vecmath.Abs)},
		&cobra.Command{Use: "unit", Short: "Unit vector", Run: runUnaryVec(vecmath.Unit)},
		&cobra.Command{Use: "mag", Short: "Magnitude", Run: runUnaryScalar(vecmath.Magnitude)},
		&cobra.Command{Use: "scale", Short: "Multiply by --scalar", Run: runScaled(vector.Mul)},
		&cobra.Command{Use: "shrink", Short: "Divide by --scalar", Run: runScaled(vector.Div)},
	)
}

func calcFirst() vector.Vector3 {
	return vector.New(calcX1, calcY1, calcZ1)
}

func calcSecond() vector.Vector3 {
	return vector.New(calcX2, calcY2, calcZ2)
}

func runBinaryVec(op func(a, b any) vector.Vector3) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		fmt.Println(op(calcFirst(), calcSecond()))
	}
}

func runBinaryScalar(op func(a, b any) float64) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		fmt.Printf("%g\n", op(calcFirst(), calcSecond()))
	}
}

func runUnaryVec(op func(a any) vector.Vector3) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		fmt.Println(op(calcFirst()))
	}
}

func runUnaryScalar(op func(a any) float64) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		fmt.Printf("%g\n", op(calcFirst()))
	}
}

func runScaled(op func(a, b any) (vector.Vector3, error)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		// scalar on the right, so the operation can never be rejected
		v, err := op(calcFirst(), calcScalar)
		if err != nil {
			fmt.Printf("no result (%v)\n", err)
			return
		}
		fmt.Println(v)
	}
}
