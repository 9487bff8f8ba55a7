package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// options holds both the persistable settings (exported, saved to the config
// file) and the per-run ones (positional arguments and toggles).
type options struct {
	Region        string `json:",omitempty"`
	WebsiteRegion string `json:",omitempty"`
	Profile       string `json:",omitempty"`
	Endpoint      string `json:",omitempty"`
	Insecure      bool   `json:",omitempty"`

	bucketName, buildName,
	source, destDir string

	dryRun, verbose, quiet, saveCfg bool
	cfgFile                         string
}

func (o *options) dump(fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := f.Close()
		if err == nil {
			err = err2
		} else if err2 != nil {
			err = fmt.Errorf("%v; %v", err, err2)
		}
	}()

	var buf []byte
	buf, err = json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	buf = append(buf, '\n')

	_, err = f.Write(buf)

	return
}

// restore merges the settings found in fname into o. A missing file is not an error.
func (o *options) restore(fname string) (err error) {
	f, err := os.Open(fname)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer func() {
		_ = f.Close()
	}()

	tmp := options{}
	dec := json.NewDecoder(f)
	if err = dec.Decode(&tmp); err != nil {
		return fmt.Errorf("parsing %s: %w", fname, err)
	}

	o.merge(tmp)

	return nil
}

func (o *options) merge(other options) {
	if x := other.Region; x != "" {
		o.Region = x
	}
	if x := other.WebsiteRegion; x != "" {
		o.WebsiteRegion = x
	}
	if x := other.Profile; x != "" {
		o.Profile = x
	}
	if x := other.Endpoint; x != "" {
		o.Endpoint = x
	}
	if x := other.Insecure; x {
		o.Insecure = x
	}

	// skipping the rest of the fields, they can never come from an unmarshalled file anyway.
}
