// Package installer downloads the sentence-transformers file set of a model
// into a local directory and records what it wrote in install_manifest.json.
//
// Files come from a Source: HubSource GETs
// <hub>/<model>/resolve/<revision>/<file> and fails on any non-2xx status,
// MinioSource reads a mirror written by a previous run. Files are written
// through viant/afs. Downloads run concurrently with an errgroup limit; each
// file is SHA-256 hashed while it is written. A previous manifest is removed
// before the first download and the new one is written last, so its presence
// marks a complete install.
//
// With a Mirror the installed files are then uploaded to an object store,
// again manifest last, so that air-gapped hosts can install with
// --from-minio.
package installer
