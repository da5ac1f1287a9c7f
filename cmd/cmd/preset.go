// Copyright (c) 2025 The wavrig authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wavrig/wavrig/internal/preset"
)

func DefinePresetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "preset <file.mgp>",
		Short:        "List the sample slots referenced by a preset",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunPreset,
	}
}

func RunPreset(cmd *cobra.Command, args []string) error {
	samples, err := preset.ReadSamples(args[0])
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		fmt.Println("no samples referenced")
		return nil
	}

	lib := libraryFromCmd(cmd)
	resolve := lib.ProjectDir != "" || lib.WavsDir != "" || lib.RecsDir != ""

	for i, name := range samples {
		if resolve {
			fmt.Printf("%d: %s (%s)\n", i+1, name, lib.Locate(name))
		} else {
			fmt.Printf("%d: %s\n", i+1, name)
		}
	}
	return nil
}
