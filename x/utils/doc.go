/*
Package utils contains decorators shared by every lockbox message: panic
recovery, logging, atomic savepoints and action tagging.
*/
package utils
