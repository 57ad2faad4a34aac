package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kadykov/cv-adapt/internal/language"
)

func init() {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported target languages",
		Run: func(cmd *cobra.Command, args []string) {
			for _, lang := range language.All() {
				fmt.Printf("%s\t%s (%s)\n", lang.Code, lang.Name, lang.NativeName)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
