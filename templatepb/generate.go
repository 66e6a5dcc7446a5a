// Package templatepb holds the generated protobuf and gRPC code for
// templatesvc.v1.TemplateService.
package templatepb

//go:generate protoc -I ../proto --go_out=. --go_opt=module=go.seankhliao.com/templatesvc/templatepb --go-grpc_out=. --go-grpc_opt=module=go.seankhliao.com/templatesvc/templatepb templatesvc/v1/template_service.proto
