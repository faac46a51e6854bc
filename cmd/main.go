// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Command site runs the tour and exhibition website together with the
// Listing controller that keeps the catalog's seasonal status current.
package main

import (
	"flag"
	"os"

	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	_ "k8s.io/client-go/plugin/pkg/client/auth"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
	"github.com/Da1TT/Tour-Business-in-China/internal/config"
	"github.com/Da1TT/Tour-Business-in-China/internal/controller"
	"github.com/Da1TT/Tour-Business-in-China/internal/metrics"
	"github.com/Da1TT/Tour-Business-in-China/internal/web"
)

var (
	webAddr = flag.String("web-bind-address", ":8080",
		"The address the website binds to.")
	metricsAddr = flag.String("metrics-bind-address", ":8081",
		"The address the metrics endpoint binds to. Use 0 to disable it.")
	probeAddr = flag.String("health-probe-bind-address", ":8082",
		"The address the health probe endpoint binds to.")
	namespace = flag.String("namespace", "default",
		"The namespace Listing resources are read from.")
	siteConfig = flag.String("site-config", "",
		"Path to the site YAML file. It is reloaded when it changes. Empty uses built-in defaults.")
	rateLimit = flag.Float64("rate-limit", 10,
		"Requests per second allowed per client IP.")
	rateBurst = flag.Int("rate-burst", 30,
		"Burst size per client IP.")
	logVerbosity = flag.Int("v", 0, "number for the log level verbosity")

	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(catalogv1alpha1.AddToScheme(scheme))
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()
	initLogging(&opts)

	site, err := config.Load(*siteConfig)
	if err != nil {
		setupLog.Error(err, "Failed to load site config", "path", *siteConfig)
		return err
	}

	store := config.NewStore(site)

	cfg, err := ctrl.GetConfig()
	if err != nil {
		setupLog.Error(err, "Failed to get rest config")
		return err
	}

	mgr, err := ctrl.NewManager(cfg, ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: *metricsAddr},
		HealthProbeBindAddress: *probeAddr,
		Cache: cache.Options{
			DefaultNamespaces: map[string]cache.Config{*namespace: {}},
		},
	})
	if err != nil {
		setupLog.Error(err, "Failed to create manager")
		return err
	}

	metrics.Register()

	if err := (&controller.ListingReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "Failed to set up controller", "controller", "Listing")
		return err
	}

	server := web.NewServer(mgr.GetClient(), store, web.Options{
		Addr:      *webAddr,
		Namespace: *namespace,
		RateLimit: *rateLimit,
		RateBurst: *rateBurst,
	})
	if err := mgr.Add(server); err != nil {
		setupLog.Error(err, "Failed to register web server")
		return err
	}

	if *siteConfig != "" {
		watcher := config.NewWatcher(*siteConfig, store, ctrl.Log)
		if err := mgr.Add(watcher); err != nil {
			setupLog.Error(err, "Failed to register site config watcher")
			return err
		}
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "Failed to set up health check")
		return err
	}

	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "Failed to set up ready check")
		return err
	}

	// Start the manager. This blocks until a signal is received.
	setupLog.Info("Manager starting", "site", site.Name, "namespace", *namespace)
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "Error starting manager")
		return err
	}

	setupLog.Info("Manager terminated")

	return nil
}

func initLogging(opts *zap.Options) {
	useV := true
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "zap-log-level" {
			useV = false
		}
	})

	if useV {
		lvl := -1 * (*logVerbosity)
		opts.Level = uberzap.NewAtomicLevelAt(zapcore.Level(int8(lvl)))
	}

	logger := zap.New(zap.UseFlagOptions(opts), zap.RawZapOpts(uberzap.AddCaller()))
	ctrl.SetLogger(logger)
}
