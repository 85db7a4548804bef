package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
	"github.com/babarinde/mezzio-swoole/pkg/dumpstore"
	"github.com/babarinde/mezzio-swoole/pkg/inspect"
)

func main() {
	cmd := &cobra.Command{
		Use:   "dump-tool",
		Short: "Inspect and manage buffered request body dumps",
	}

	cmd.PersistentFlags().String("config", "", "Path to the configuration file")

	infoCmd := &cobra.Command{
		Use:   "info <file> [files...]",
		Short: "Summarize body dump files",
		Args:  cobra.MinimumNArgs(1),
		Run:   helpInterceptor(runInfo),
	}
	infoCmd.Flags().String("format", "", "Output format, json or yaml")
	infoCmd.Flags().Int("preview-bytes", -1, "Content bytes to include in the preview")

	readCmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Print dump content, optionally from a seek position",
		Args:  cobra.ExactArgs(1),
		Run:   helpInterceptor(runRead),
	}
	readCmd.Flags().Int64("offset", 0, "Seek offset")
	readCmd.Flags().String("whence", "start", "Seek origin, one of start, current or end")
	readCmd.Flags().Int64("length", -1, "Bytes to print, -1 for everything after the seek")

	storeCmd := &cobra.Command{
		Use:   "store <file> [files...]",
		Short: "Copy files into the dump store",
		Args:  cobra.MinimumNArgs(1),
		Run:   helpInterceptor(runStore),
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List stored dumps with their sizes",
		Run:   helpInterceptor(runLs),
	}

	watchCmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and summarize new dumps once writes settle",
		Args:  cobra.MaximumNArgs(1),
		Run:   helpInterceptor(runWatch),
	}

	emptyConfigCmd := &cobra.Command{
		Use:   "empty-config",
		Short: "Print the default configuration",
		Run:   helpInterceptor(emptyConfig),
	}

	cmd.AddCommand(infoCmd, readCmd, storeCmd, lsCmd, watchCmd, emptyConfigCmd)

	err := cmd.Execute()
	if err != nil {
		logrus.WithError(err).Error("Failed to execute command")
	}
}

func helpInterceptor(child func(cmd *cobra.Command, args []string)) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		printHelp := false

		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				printHelp = true
			}
		}

		if printHelp {
			cmd.Help()
			os.Exit(0)
		} else {
			child(cmd, args)
		}
	}
}

func loadOptions(cmd *cobra.Command) Options {
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := parseConfig(configPath)
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
	}

	return opts
}

func openStream(filePath string) (*bodystream.BufferStream, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return bodystream.NewBufferStream(bodystream.BytesSource(data)), nil
}

func emitInfo(info inspect.Info, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "    ")
		enc.Encode(info)
	} else {
		yaml.NewEncoder(os.Stdout).Encode(info)
	}
}

func runInfo(cmd *cobra.Command, args []string) {
	opts := loadOptions(cmd)

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		opts.Format = format
	}
	if previewBytes, _ := cmd.Flags().GetInt("preview-bytes"); previewBytes >= 0 {
		opts.PreviewBytes = previewBytes
	}

	for _, filePath := range args {
		stream, err := openStream(filePath)
		if err != nil {
			logrus.WithError(err).WithField("file", filePath).Error("Failed to open dump")
			continue
		}

		emitInfo(inspect.Describe(path.Base(filePath), stream, opts.PreviewBytes), opts.Format)
	}
}

func runRead(cmd *cobra.Command, args []string) {
	stream, err := openStream(args[0])
	if err != nil {
		logrus.WithError(err).WithField("file", args[0]).Error("Failed to open dump")
		return
	}

	offset, _ := cmd.Flags().GetInt64("offset")
	whenceName, _ := cmd.Flags().GetString("whence")
	length, _ := cmd.Flags().GetInt64("length")

	if offset != 0 || whenceName != "start" {
		whence, err := parseWhence(whenceName)
		if err != nil {
			logrus.WithError(err).Error("Failed to seek")
			return
		}

		if _, err = stream.Seek(offset, whence); err != nil {
			logrus.WithError(err).Error("Failed to seek")
			return
		}
	}

	if length < 0 {
		os.Stdout.Write(stream.Contents())
		return
	}

	buf := make([]byte, length)
	n, err := stream.Read(buf)
	if err != nil && err != io.EOF {
		logrus.WithError(err).Error("Failed to read")
		return
	}
	os.Stdout.Write(buf[:n])
}

func parseWhence(name string) (int, error) {
	switch name {
	case "start":
		return io.SeekStart, nil
	case "current":
		return io.SeekCurrent, nil
	case "end":
		return io.SeekEnd, nil
	}

	return 0, fmt.Errorf("unknown whence %q", name)
}

func runStore(cmd *cobra.Command, args []string) {
	opts := loadOptions(cmd)
	store := dumpstore.NewStore(opts.StoreDir)

	for _, filePath := range args {
		stream, err := openStream(filePath)
		if err != nil {
			logrus.WithError(err).WithField("file", filePath).Error("Failed to open file")
			continue
		}

		name, err := store.SaveStream(stream)
		if err != nil {
			logrus.WithError(err).WithField("file", filePath).Error("Failed to store dump")
			continue
		}

		fmt.Println(name)
	}
}

func runLs(cmd *cobra.Command, args []string) {
	opts := loadOptions(cmd)
	store := dumpstore.NewStore(opts.StoreDir)

	names, err := store.List()
	if err != nil {
		logrus.WithError(err).Error("Failed to list dumps")
		return
	}

	for _, name := range names {
		stream, err := store.Open(name)
		if err != nil {
			logrus.WithError(err).WithField("dump", name).Error("Failed to open dump")
			continue
		}

		fmt.Printf("%s\t%s\n", name, humanize.Bytes(uint64(stream.Size())))
	}
}

func emptyConfig(cmd *cobra.Command, args []string) {
	opts := defaultOptions()
	fmt.Println("JSON:")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	enc.Encode(opts)
	fmt.Println("YAML:")
	yaml.NewEncoder(os.Stdout).Encode(opts)
}
