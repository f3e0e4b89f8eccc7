// Package environment names the environments an application can run in and
// normalizes the values read from configuration ("prod", "Production", ...).
package environment
