package inspect

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/scru64/go-scru64/pkg/scru64"
)

// Report is the decoded view of one identifier.
type Report struct {
	SCRU64    string `json:"scru64"`
	Hex       string `json:"hex"`
	Num       uint64 `json:"num"`
	Timestamp uint64 `json:"timestamp"`
	UnixTsMs  uint64 `json:"unixTsMs"`
	NodeCtr   uint32 `json:"nodeCtr"`
}

// NewCommand constructs the `inspect` command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>...",
		Short: "Decode SCRU64 identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(args, cmd.OutOrStdout())
		},
	}
}

// Run decodes each argument and writes one JSON report per line to out. The
// first malformed argument aborts the run; nothing partial is printed for it.
func Run(args []string, out io.Writer) error {
	enc := json.NewEncoder(out)
	for _, arg := range args {
		id, err := scru64.Parse(arg)
		if err != nil {
			return err
		}
		if err := enc.Encode(reportFor(id)); err != nil {
			return err
		}
	}
	return nil
}

func reportFor(id scru64.ID) Report {
	return Report{
		SCRU64:    id.String(),
		Hex:       id.Hex(),
		Num:       id.Uint64(),
		Timestamp: id.Timestamp(),
		UnixTsMs:  id.Timestamp() * 256,
		NodeCtr:   id.NodeCtr(),
	}
}
