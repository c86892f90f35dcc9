package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"actionfilter"
	nt "actionfilter/entity"
	"actionfilter/mirror"
)

func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the filter at FROM to TO and renumber",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {

			from, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "bad FROM")
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "bad TO")
			}

			return withApp(cmd, func(ap *app) error {

				list, err := runMove(ap.ctx, ap.query, actionfilter.Capture(ap.ctx, ap.logger), from, to)
				if err != nil {
					return err
				}

				printList(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}
}

// runMove reorders the query's filters through a mirror and persists the result.
// A failed save is returned and leaves the query as it was.
func runMove(ctx context.Context, qry *actionfilter.Query, capture mirror.Capture, from, to int) (list nt.FilterList, err error) {

	mr := mirror.New(nil, capture).Sync(qry.Filters())

	mr, err = mr.Move(from, to)
	if err != nil {
		return
	}

	err = qry.SetFilters(ctx, mr.Local())
	if err != nil {
		return
	}

	list = qry.Filters()
	return
}

func printList(out io.Writer, list nt.FilterList) {

	if len(list) == 0 {
		fmt.Fprintln(out, "no filters")
		return
	}

	for _, entry := range list {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", entry.Order, entry.Type, entry.ID, entry.Name, entry.Math)
	}
}
