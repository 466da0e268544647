// Package config holds Miner's mode flags and numeric parameters
// (spec §5/§9), loadable from a YAML file via gopkg.in/yaml.v3, with
// a Validate method that aggregates invalid-combination errors the
// way the teacher's option validators do (collect every violation,
// don't stop at the first).
package config
