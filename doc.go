// Package templatesvc runs a single gRPC endpoint
// through a bind, serve, drain lifecycle.
//
// Hello world:
//
//	c, err := templatesvc.NewConfig(templatesvc.WithEnv())
//	if err != nil {
//	        // *ConfigValidationError
//	}
//	log := c.Logger()
//	settings, _ := c.Settings()
//	lc := templatesvc.NewLifecycle(settings, log,
//	        templatesvc.WithRegistrar(func(s grpc.ServiceRegistrar) {
//	                templatepb.RegisterTemplateServiceServer(s, svc)
//	        }),
//	)
//	go templatesvc.NewSignalBridge(log, lc).Listen(ctx)
//	err = templatesvc.Run(ctx, lc)
//
// Start blocks until a stop is requested, by a signal through
// SignalBridge, an explicit Stop, or ctx, and the drain has finished.
// Stop gives in-flight calls the grace period, then abandons them.
package templatesvc
