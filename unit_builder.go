package systemctl

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coreos/go-systemd/v22/unit"
	"github.com/google/renameio/v2"
)

// File modes for generated unit files
const (
	// UnitFileMode is the mode for written unit files
	UnitFileMode = 0o644
)

// UnitBuilder provides a fluent interface for generating service unit
// files. Directives mirror the fields the extractor reads back, so a
// built unit round-trips through Unit queries.
type UnitBuilder struct {
	// Name is the unit name without the .service suffix
	Name string
	// Dir is the directory the unit file is written to
	Dir string
	// Description is the [Unit] Description= value
	Description string
	// Docs are Documentation= references (man:... or URLs)
	Docs []string
	// ExecStart is the command line executed on start
	ExecStart string
	// ExecReload is the command line executed on reload
	ExecReload string
	// Restart is the Restart= policy
	Restart string
	// KillMode is the KillMode= setting
	KillMode string
	// Env contains Environment= variables
	Env map[string]string
	// Wants, Before and After order the unit against others
	Wants  []string
	Before []string
	After  []string
	// WantedBy and Also populate the [Install] section
	WantedBy []string
	Also     []string
}

// NewUnitBuilder creates a UnitBuilder for a service unit in dir
func NewUnitBuilder(name, dir string) *UnitBuilder {
	return &UnitBuilder{
		Name: strings.TrimSuffix(name, "."+typeServiceStr),
		Dir:  dir,
		Env:  make(map[string]string),
	}
}

// WithDescription sets the unit description
func (b *UnitBuilder) WithDescription(desc string) *UnitBuilder {
	b.Description = desc
	return b
}

// WithDoc appends a documentation reference
func (b *UnitBuilder) WithDoc(ref string) *UnitBuilder {
	b.Docs = append(b.Docs, ref)
	return b
}

// WithExecStart sets the start command line
func (b *UnitBuilder) WithExecStart(cmd string) *UnitBuilder {
	b.ExecStart = cmd
	return b
}

// WithExecReload sets the reload command line
func (b *UnitBuilder) WithExecReload(cmd string) *UnitBuilder {
	b.ExecReload = cmd
	return b
}

// WithRestart sets the restart policy
func (b *UnitBuilder) WithRestart(policy string) *UnitBuilder {
	b.Restart = policy
	return b
}

// WithKillMode sets the kill mode
func (b *UnitBuilder) WithKillMode(mode string) *UnitBuilder {
	b.KillMode = mode
	return b
}

// WithEnv adds an environment variable
func (b *UnitBuilder) WithEnv(key, value string) *UnitBuilder {
	b.Env[key] = value
	return b
}

// WithWants appends a Wants= dependency
func (b *UnitBuilder) WithWants(units ...string) *UnitBuilder {
	b.Wants = append(b.Wants, units...)
	return b
}

// WithBefore appends a Before= ordering constraint
func (b *UnitBuilder) WithBefore(units ...string) *UnitBuilder {
	b.Before = append(b.Before, units...)
	return b
}

// WithAfter appends an After= ordering constraint
func (b *UnitBuilder) WithAfter(units ...string) *UnitBuilder {
	b.After = append(b.After, units...)
	return b
}

// WithWantedBy appends a WantedBy= install target
func (b *UnitBuilder) WithWantedBy(units ...string) *UnitBuilder {
	b.WantedBy = append(b.WantedBy, units...)
	return b
}

// WithAlso appends an Also= install companion
func (b *UnitBuilder) WithAlso(units ...string) *UnitBuilder {
	b.Also = append(b.Also, units...)
	return b
}

// options assembles the unit file directives in section order
func (b *UnitBuilder) options() []*unit.UnitOption {
	var opts []*unit.UnitOption

	if b.Description != "" {
		opts = append(opts, unit.NewUnitOption("Unit", "Description", b.Description))
	}
	for _, doc := range b.Docs {
		opts = append(opts, unit.NewUnitOption("Unit", "Documentation", doc))
	}
	for _, w := range b.Wants {
		opts = append(opts, unit.NewUnitOption("Unit", "Wants", w))
	}
	for _, u := range b.Before {
		opts = append(opts, unit.NewUnitOption("Unit", "Before", u))
	}
	for _, u := range b.After {
		opts = append(opts, unit.NewUnitOption("Unit", "After", u))
	}

	if b.ExecStart != "" {
		opts = append(opts, unit.NewUnitOption("Service", "ExecStart", b.ExecStart))
	}
	if b.ExecReload != "" {
		opts = append(opts, unit.NewUnitOption("Service", "ExecReload", b.ExecReload))
	}
	if b.Restart != "" {
		opts = append(opts, unit.NewUnitOption("Service", "Restart", b.Restart))
	}
	if b.KillMode != "" {
		opts = append(opts, unit.NewUnitOption("Service", "KillMode", b.KillMode))
	}
	envKeys := make([]string, 0, len(b.Env))
	for key := range b.Env {
		envKeys = append(envKeys, key)
	}
	sort.Strings(envKeys)
	for _, key := range envKeys {
		opts = append(opts, unit.NewUnitOption("Service", "Environment", fmt.Sprintf("%s=%s", key, b.Env[key])))
	}

	for _, u := range b.WantedBy {
		opts = append(opts, unit.NewUnitOption("Install", "WantedBy", u))
	}
	for _, u := range b.Also {
		opts = append(opts, unit.NewUnitOption("Install", "Also", u))
	}

	return opts
}

// Build serializes the unit file content
func (b *UnitBuilder) Build() ([]byte, error) {
	if b.ExecStart == "" {
		return nil, fmt.Errorf("unit %q: ExecStart is required", b.Name)
	}
	return io.ReadAll(unit.Serialize(b.options()))
}

// Write builds the unit file and writes it atomically, returning the
// written path. A daemon-reload is still required before systemd sees the
// new file.
func (b *UnitBuilder) Write() (string, error) {
	content, err := b.Build()
	if err != nil {
		return "", err
	}
	path := filepath.Join(b.Dir, b.Name+"."+typeServiceStr)
	if err := renameio.WriteFile(path, content, UnitFileMode); err != nil {
		return "", fmt.Errorf("writing unit file: %w", err)
	}
	return path, nil
}
