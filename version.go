package contexthelp

var Version = "v0.0.1"
