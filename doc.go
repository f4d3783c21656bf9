// Package confctl is the root of a toolkit for reading and editing
// JSON and TOML config files addressed by key paths such as
// network.timeout or servers[0].host.
//
// The packages split along the pipeline:
//
//   - keypath parses and renders the path language
//   - kind classifies nodes into the shared type taxonomy
//   - jsondoc and tomldoc are the two document backends
//   - nav resolves paths and implements read, set, delete and list
//   - errs carries the closed error taxonomy and exit codes
//   - conffile loads files and writes them back atomically
//   - cmd/confctl is the command line front end
package confctl
