package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HWRM/KarosGraveyard/pkg/vecmath"
	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print sample vector computations",
	Long: `Run the demonstration script: construct two vectors and a scalar,
then print the result of every supported operation, including the
rejected vector-times-vector product.`,
	Run: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	v1 := vector.New(1, 5, 2)
	v2 := vector.New(10, -2, -6)
	n := 5.0

	fmt.Println("Vector Demonstration")
	fmt.Println("====================")
	fmt.Printf("v1 = %s\n", v1)
	fmt.Printf("v2 = %s\n", v2)
	fmt.Printf("n  = %g\n\n", n)

	fmt.Println("Operators:")
	fmt.Printf("  v1 + v2 = %s\n", vector.Add(v1, v2))
	fmt.Printf("  v1 - v2 = %s\n", vector.Sub(v1, v2))
	fmt.Printf("  -v1     = %s\n", v1.Neg())
	mulN, mulNErr := vector.Mul(v1, n)
	printProduct("v1 * n ", mulN, mulNErr)
	divN, divNErr := vector.Div(v1, n)
	printProduct("v1 / n ", divN, divNErr)
	fmt.Printf("  v1 ^ n  = %s\n", vector.Pow(v1, n))
	mulV, mulVErr := vector.Mul(v1, v2)
	printProduct("v1 * v2", mulV, mulVErr)
	divV, divVErr := vector.Div(v1, v2)
	printProduct("v1 / v2", divV, divVErr)
	fmt.Printf("  concat  = %s\n\n", vector.Concat("v1 is ", v1))

	fmt.Println("Utilities:")
	fmt.Printf("  dot(v1, v2)          = %g\n", vecmath.Dot(v1, v2))
	fmt.Printf("  cross(v1, v2)        = %s\n", vecmath.Cross(v1, v2))
	fmt.Printf("  mag(v1)              = %g\n", vecmath.Mag(v1))
	fmt.Printf("  mag(v2)              = %g\n", vecmath.Mag(v2))
	fmt.Printf("  unit(v1)             = %s\n", vecmath.Unit(v1))
	fmt.Printf("  abs(v2)              = %s\n", vecmath.Abs(v2))
	fmt.Printf("  angleBetween(v1, v2) = %g rad\n", vecmath.AngleBetween(v1, v2))
}

func printProduct(label string, v vector.Vector3, err error) {
	if err != nil {
		fmt.Printf("  %s : no result (%v)\n", label, err)
		return
	}
	fmt.Printf("  %s = %s\n", label, v)
}
