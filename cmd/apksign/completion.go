package main

import (
	"github.com/apkforge/apksign/internal/keystore"
	"github.com/posener/complete"
)

// aliasPredictor completes the closed alias token set.
func aliasPredictor() complete.Predictor {
	return complete.PredictSet(keystore.Aliases()...)
}

// apkPredictor completes APK files in the current directory tree.
func apkPredictor() complete.Predictor {
	return complete.PredictFiles("*.apk")
}
