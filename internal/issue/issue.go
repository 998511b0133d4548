// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	UnreadableFileId
	DataReadFailedId
	OutputWriteFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# HDF5 file not found!

The path you gave does not point to an existing file.

## Things you can try:
- Check the path for typos:
~~~
$ ls -l path/to/data.h5
~~~

- Use an absolute path if the file lives outside the current directory
- Quote paths containing spaces`,
	}

	unreadableFileIssue = &Issue{
		id: UnreadableFileId,
		mdMsg: `
# Cannot read the HDF5 file!

The file exists but could not be opened as an HDF5 container.

## Common causes:
- The file is not an HDF5 file (wrong format or extension)
- The file is truncated or corrupt
- The file uses an unsupported superblock version

## Things you can try:
- Verify the signature; HDF5 files start with the bytes ` + "`\\x89HDF\\r\\n\\x1a\\n`" + `:
~~~
$ head -c 8 path/to/data.h5 | xxd
~~~

- Re-export the file from the producing tool
- Run with --verbose to see the underlying parser error`,
	}

	dataReadFailedIssue = &Issue{
		id: DataReadFailedId,
		mdMsg: `
# A dataset payload could not be read

One or more datasets failed to materialize. The report still contains the
full structure; the affected content lines carry an error placeholder.

## Common causes:
- Unsupported compression filter on the dataset
- A chunked layout with a damaged chunk index

## Things you can try:
- Run with --verbose to see which datasets failed and why
- Re-export the file without compression filters`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Could not write the report file!

The output file could not be created or written.

## Things you can try:
- Check that the output directory exists and is writable
- Choose another location:
~~~
$ h5printer data.h5 --save --output /tmp/report.txt
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the h5printer configuration file.

## Configuration file locations:
- Linux: ~/.config/h5printer/config.toml
- macOS: ~/Library/Application Support/h5printer/config.toml
- Windows: %APPDATA%\h5printer\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ h5printer config init
~~~

- Check the file for TOML syntax errors
- Remove the file to fall back to built-in defaults`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():      fileNotFoundIssue,
		unreadableFileIssue.Id():    unreadableFileIssue,
		dataReadFailedIssue.Id():    dataReadFailedIssue,
		outputWriteFailedIssue.Id(): outputWriteFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
