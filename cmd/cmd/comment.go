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
)

func DefineCommentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read or write the description stored in a WAV file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:          "get <file.wav>",
			Short:        "Print the file's description",
			Args:         cobra.ExactArgs(1),
			SilenceUsage: true,
			RunE:         RunCommentGet,
		},
		&cobra.Command{
			Use:          "set <file.wav> <text>",
			Short:        "Store a description, positioned for hardware compatibility",
			Args:         cobra.ExactArgs(2),
			SilenceUsage: true,
			RunE:         RunCommentSet,
		},
	)
	return cmd
}

func RunCommentGet(cmd *cobra.Command, args []string) error {
	comment, err := library.ReadComment(args[0])
	if err != nil {
		return err
	}
	fmt.Println(comment)
	return nil
}

func RunCommentSet(cmd *cobra.Command, args []string) error {
	if err := library.WriteComment(args[0], args[1]); err != nil {
		return err
	}
	log.WithField("file", args[0]).Info("comment written")
	return nil
}
