package main

import (
	"io"

	"github.com/bytedance/sonic"
)

func writeResult(w io.Writer, value any, body string, raw, pretty bool) error {
	if raw {
		_, err := io.WriteString(w, body+"\n")
		return err
	}
	return writeJSON(w, value, pretty)
}

func writeJSON(w io.Writer, value any, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = sonic.ConfigStd.MarshalIndent(value, "", "  ")
	} else {
		out, err = sonic.ConfigStd.Marshal(value)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
