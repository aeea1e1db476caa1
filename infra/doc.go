// Package infra contains technical adapters such as the sheet fetcher, the
// MQTT chat transport and metrics exporters. These packages depend only on
// the interfaces defined in the core packages.
package infra
