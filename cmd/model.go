/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/InputParameters"
)

// ModelCmd represents the model command
var ModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Build a magnetic component model from a YAML description",
	Long: `
Reads a magnetic component description, assembles core, air gaps, winding
window and conductors, and reports the derived geometry and mesh sizing
hints,

fmt-go model -i inductor.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, err := cmd.Flags().GetString("inputFile")
		if err != nil {
			panic(err)
		}
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}

		data, err := ioutil.ReadFile(inputFile)
		if err != nil {
			fmt.Printf("unable to read input file %s: %v\n", inputFile, err)
			os.Exit(1)
		}

		mp := &InputParameters.MagneticComponentParameters{}
		if err = mp.Parse(data); err != nil {
			fmt.Printf("unable to parse input file %s: %v\n", inputFile, err)
			os.Exit(1)
		}
		mp.Print()

		mc, err := mp.Build()
		if err != nil {
			fmt.Printf("unable to build component: %v\n", err)
			os.Exit(1)
		}
		report(mc)
	},
}

func init() {
	rootCmd.AddCommand(ModelCmd)
	ModelCmd.Flags().StringP("inputFile", "i", "", "YAML component description file")
	ModelCmd.Flags().Bool("profile", false, "write a CPU profile of the model build")
}

func report(mc *InputParameters.MagneticComponent) {
	fmt.Printf("%8.5f\t\t= RInner\n", mc.Core.RInner)
	fmt.Printf("%8.5f\t\t= ROuter\n", mc.Core.ROuter)
	fmt.Printf("[%s]\t\t= PermeabilityType\n", mc.Core.PermeabilityType)
	fmt.Printf("[%s]\t\t= Sigma\n", mc.Core.Sigma)
	if mc.AirGaps != nil {
		for i, midpoint := range mc.AirGaps.Midpoints {
			fmt.Printf("AirGap[%d] = leg %s, position %8.5f, height %8.5f\n",
				i, midpoint.Leg, midpoint.Position, midpoint.Height)
		}
	}
	for i, vww := range mc.WindingWindow.VirtualWindingWindows {
		fmt.Printf("VWW[%d] = %s\n", i, vww)
	}
	fmt.Printf("%12.9f\t= CCore\n", mc.MeshData.CCore)
	fmt.Printf("%12.9f\t= CWindow\n", mc.MeshData.CWindow)
	fmt.Printf("%12.9f\t= SkinDepth\n", mc.MeshData.Delta)
	for i, c := range mc.MeshData.CConductor {
		fmt.Printf("%12.9f\t= CConductor[%d]\n", c, i)
	}
}
