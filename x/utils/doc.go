/*
Package utils contains decorators that every application stack needs: panic
recovery, per transaction logging, state savepoints and result tagging.
*/
package utils
