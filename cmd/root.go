package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	// Register the memory service for [services] entries.
	_ "github.com/beyondstorage/go-service-memory"

	"github.com/beyondstorage/beyond-urlconn/config"
	"github.com/beyondstorage/beyond-urlconn/constants"
	"github.com/beyondstorage/beyond-urlconn/logger"
	"github.com/beyondstorage/beyond-urlconn/pprof"
	"github.com/beyondstorage/beyond-urlconn/urlconn"
)

var (
	versionFlag bool
	cfgFileFlag string
	headerFlag  []string
	timeoutFlag time.Duration
	headFlag    bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   constants.Name + " <target>",
	Short: "Read a file, http or storage target through a URL connection.",
	Long:  "Read a file, http or storage target through a URL connection and write its content to stdout.",
	SilenceUsage: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "BeyondURLConn version %s\n", constants.Version)
			return nil
		}

		c, err := config.LoadConfigFromFilepath(cfgFileFlag)
		if err != nil {
			return err
		}
		if err := logger.SetUpLog(c.LogLevel); err != nil {
			return err
		}
		if c.PProf != "" {
			pprof.StartPP(c.PProf)
		}

		s := config.GetOpenerSetting(c)
		if err := applyFlags(s); err != nil {
			return err
		}
		o, err := config.NewOpener(s)
		if err != nil {
			return err
		}
		return Fetch(cmd.OutOrStdout(), o, args[0], headFlag)
	},
}

// applyFlags overrides the settings with command line flags.
func applyFlags(s *config.OpenerSettings) error {
	for _, h := range headerFlag {
		kv := strings.SplitN(h, ":", 2)
		if len(kv) != 2 {
			return fmt.Errorf("invalid header %q, expect \"Key: Value\"", h)
		}
		if s.Header == nil {
			s.Header = make(http.Header)
		}
		s.Header.Add(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}
	if timeoutFlag > 0 {
		s.ConnectTimeout = timeoutFlag
	}
	return nil
}

// Fetch opens target and writes its content to w, or only its metadata when head is set.
func Fetch(w io.Writer, o *urlconn.Opener, target string, head bool) (err error) {
	h, err := o.Open(target)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, h.Close())
	}()
	zap.L().Info("Fetching", zap.String("id", h.ID()), zap.String("target", target))

	if head {
		ct, err := h.ContentType()
		if err != nil {
			return err
		}
		n, err := h.ContentLength()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Content-Type: %s\nContent-Length: %d\n", ct, n)
		return err
	}

	r, err := h.Content()
	if err != nil {
		return err
	}
	n, err := io.Copy(w, r)
	if err != nil {
		return err
	}
	zap.L().Debug("Fetched", zap.String("id", h.ID()), zap.Int64("bytes", n))
	return r.Close()
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "v", false, "Show version")
	RootCmd.PersistentFlags().StringVarP(&cfgFileFlag, "config", "c", "", "Specify config file")
	RootCmd.Flags().StringArrayVarP(&headerFlag, "header", "H", nil, "Add a request property, \"Key: Value\"")
	RootCmd.Flags().DurationVarP(&timeoutFlag, "timeout", "t", 0, "Connect timeout")
	RootCmd.Flags().BoolVarP(&headFlag, "head", "I", false, "Print content type and length only")
}
