// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/db47h/fsmsim"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCmd simulates one machine over one input sequence.
var runCmd = &cobra.Command{
	Use:   "run [machine_file] [input_bits]",
	Short: "Run a machine over an input bit sequence.",
	Long: `Run parses a machine description file, feeds it the given sequence of
input bits and prints the resulting output bits on stdout.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		m := readMachineFile(args[0])
		inputs, err := fsmsim.ParseBits(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		run, err := m.Record(inputs)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		log.Infof("run %s: %d cycles", run.ID, len(run.Outputs))
		fmt.Println(fsmsim.FormatBits(run.Outputs))
	},
}

// Parse and compile a machine description file.
func readMachineFile(filename string) *fsmsim.Machine {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var spec *fsmsim.Spec
		spec, err = fsmsim.ParseSpec(string(bytes))
		if err == nil {
			var m *fsmsim.Machine
			m, err = fsmsim.New(spec)
			if err == nil {
				log.Debugf("%s: %d states, initial %s", filename, len(spec.States), spec.Initial)
				return m
			}
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
