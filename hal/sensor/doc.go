// Package sensor provides read-only handles for common robot sensors and
// the non-claiming registries that expose them.
//
// Sensor data is reported through pointers into driver-owned storage, the
// same way package joint reports joint state. Sensor interfaces never claim:
// any number of consumers may read the same sensor.
package sensor
