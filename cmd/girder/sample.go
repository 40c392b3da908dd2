package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Girder/internal/ingest"
)

var sampleOutput string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write an example input workbook",
	Long: `Write an example load schedule: a 6 kN/m UDL over a 15 m span.

This is the classic wL²/8 verification case: Ra = Rb = 45 kN with a
168.75 kNm moment at midspan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ingest.WriteSample(sampleOutput); err != nil {
			return err
		}
		fmt.Printf("Sample workbook written to %s\n", sampleOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "input_data.xlsx", "Output workbook path")
}
