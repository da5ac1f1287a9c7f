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
)

func DefineRenumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "renumber <dir>",
		Short:        "Apply the directory's numbering scheme to unprefixed samples",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunRenumber,
	}
}

func RunRenumber(cmd *cobra.Command, args []string) error {
	lib := libraryFromCmd(cmd)

	renames, err := lib.Renumber(args[0])
	if err != nil {
		return err
	}

	for _, r := range renames {
		fmt.Printf("%s -> %s\n", r.From, r.To)
	}
	fmt.Printf("renumbered %d file(s)\n", len(renames))
	return nil
}
