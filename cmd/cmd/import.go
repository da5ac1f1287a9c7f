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
	"github.com/wavrig/wavrig/internal/library"
	fmtutil "github.com/wavrig/wavrig/pkg/util/format"
	osutils "github.com/wavrig/wavrig/pkg/util/os"
)

func DefineImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "import <src>...",
		Short:        "Import audio files into a sample directory",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunImport,
	}

	cmd.Flags().StringP("dest", "d", "", "destination sample directory")
	cmd.Flags().Bool("number", false, "prefix imported names with the directory's numbering scheme")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func RunImport(cmd *cobra.Command, args []string) error {
	dest, _ := cmd.Flags().GetString("dest")
	number, _ := cmd.Flags().GetBool("number")

	if _, err := osutils.EnsureDir(dest, false); err != nil {
		return err
	}

	lib := libraryFromCmd(cmd)
	results, err := lib.Import(cmd.Context(), library.CopyConverter{}, dest, args, library.ImportOptions{
		ApplyNumbering: number,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s -> %s (%s)\n", r.Source, r.Name, fmtutil.FormatBytes(r.Size))
	}
	fmt.Printf("imported %d file(s) into %s\n", len(results), dest)
	return nil
}
